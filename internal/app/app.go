package app

import (
	"fmt"
	"net/http"
	"storemap/internal/app/deps"
	"storemap/internal/app/services"
	"storemap/internal/http/handlers/auth"
	changepassword "storemap/internal/http/handlers/auth/change_password"
	login "storemap/internal/http/handlers/auth/log_in"
	logout "storemap/internal/http/handlers/auth/log_out"
	me "storemap/internal/http/handlers/auth/me"
	resetpassword "storemap/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "storemap/internal/http/handlers/auth/send_password_reset_token"
	signup "storemap/internal/http/handlers/auth/sign_up"
	validatepasswordresettoken "storemap/internal/http/handlers/auth/validate_password_reset_token"
	createreview "storemap/internal/http/handlers/stores/create_review"
	createstore "storemap/internal/http/handlers/stores/create_store"
	getstorebyslug "storemap/internal/http/handlers/stores/get_store_by_slug"
	liststorereviews "storemap/internal/http/handlers/stores/list_store_reviews"
	liststores "storemap/internal/http/handlers/stores/list_stores"
	tagcounts "storemap/internal/http/handlers/stores/tag_counts"
	topstores "storemap/internal/http/handlers/stores/top_stores"
	updatestore "storemap/internal/http/handlers/stores/update_store"
	uploadstorephoto "storemap/internal/http/handlers/stores/upload_store_photo"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/login", login.New(s.LogIn))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/send",
		sendpasswordresettoken.New(s.SendPasswordResetToken),
	)
	authRouter.Method(
		http.MethodGet,
		"/password_reset/{token}",
		validatepasswordresettoken.New(s.ValidatePasswordResetToken),
	)
	authRouter.Method(http.MethodPost, "/password_reset", resetpassword.New(s.ResetPassword))
	authRouter.Group(func(r chi.Router) {
		r.Use(auth.SetAuthTokenToContext)
		r.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
		r.Method(http.MethodPost, "/change_password", changepassword.New(s.ChangePassword))
	})

	storesRouter := chi.NewRouter()
	storesRouter.Use(auth.SetAuthTokenToContext)
	storesRouter.Method(http.MethodGet, "/", liststores.New(s.ListStores))
	storesRouter.Method(http.MethodPost, "/", createstore.New(s.CreateStore))
	storesRouter.Method(http.MethodGet, "/{slug:[a-z0-9-]+}", getstorebyslug.New(s.GetStoreBySlug))
	storesRouter.Method(http.MethodPut, "/{storeID:[0-9]+}", updatestore.New(s.UpdateStore))
	storesRouter.Method(
		http.MethodPost,
		"/{storeID:[0-9]+}/photo",
		uploadstorephoto.New(s.UploadStorePhoto),
	)
	storesRouter.Method(
		http.MethodGet,
		"/{storeID:[0-9]+}/reviews",
		liststorereviews.New(s.ListStoreReviews),
	)
	storesRouter.Method(
		http.MethodPost,
		"/{storeID:[0-9]+}/reviews",
		createreview.New(s.CreateReview),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/stores", storesRouter)
	router.Method(http.MethodGet, "/tags", tagcounts.New(s.GetTagCounts))
	router.Method(http.MethodGet, "/top", topstores.New(s.GetTopStores))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
