package services

import (
	"storemap/internal/app/deps"
	drl "storemap/internal/core/domain/rate_limiter"
	"storemap/internal/core/services"
	"storemap/internal/core/services/auth"
	changepassword "storemap/internal/core/services/change_password"
	createreview "storemap/internal/core/services/create_review"
	createstore "storemap/internal/core/services/create_store"
	getstorebyslug "storemap/internal/core/services/get_store_by_slug"
	gettagcounts "storemap/internal/core/services/get_tag_counts"
	gettopstores "storemap/internal/core/services/get_top_stores"
	getuserbysessiontoken "storemap/internal/core/services/get_user_by_session_token"
	liststorereviews "storemap/internal/core/services/list_store_reviews"
	liststores "storemap/internal/core/services/list_stores"
	login "storemap/internal/core/services/log_in"
	logout "storemap/internal/core/services/log_out"
	ratelimiting "storemap/internal/core/services/rate_limiting"
	resetpassword "storemap/internal/core/services/reset_password"
	sendpasswordresettoken "storemap/internal/core/services/send_password_reset_token"
	signup "storemap/internal/core/services/sign_up"
	updatestore "storemap/internal/core/services/update_store"
	uploadstorephoto "storemap/internal/core/services/upload_store_photo"
	validatepasswordresettoken "storemap/internal/core/services/validate_password_reset_token"
)

type Services struct {
	SignUp                     services.Service[signup.Input, signup.Result]
	LogIn                      services.Service[login.Input, login.Result]
	LogOut                     services.Service[logout.Input, logout.Result]
	GetUserBySessionToken      services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	ChangePassword             services.Service[changepassword.Input, changepassword.Result]
	SendPasswordResetToken     services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ValidatePasswordResetToken services.Service[validatepasswordresettoken.Input, validatepasswordresettoken.Result]
	ResetPassword              services.Service[resetpassword.Input, resetpassword.Result]

	CreateStore      services.Service[createstore.Input, createstore.Result]
	UpdateStore      services.Service[updatestore.Input, updatestore.Result]
	ListStores       services.Service[liststores.Input, liststores.Result]
	GetStoreBySlug   services.Service[getstorebyslug.Input, getstorebyslug.Result]
	GetTagCounts     services.Service[gettagcounts.Input, gettagcounts.Result]
	GetTopStores     services.Service[gettopstores.Input, gettopstores.Result]
	UploadStorePhoto services.Service[uploadstorephoto.Input, uploadstorephoto.Result]

	CreateReview     services.Service[createreview.Input, createreview.Result]
	ListStoreReviews services.Service[liststorereviews.Input, liststorereviews.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.UserSessionTokenGenerator,
		deps.Now,
	)
	s.LogIn = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		login.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.UserSessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = auth.WithAuthentication(
		deps.SessionRepository,
		getuserbysessiontoken.New(),
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordResetTokenGenerator,
			deps.PasswordResetTokenSender,
			deps.Config.PasswordResetValidDuration,
			deps.Now,
		),
	)
	s.ValidatePasswordResetToken = validatepasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.SessionRepository,
		deps.PasswordHasher,
		deps.UserSessionTokenGenerator,
		deps.Now,
	)

	s.CreateStore = auth.WithAuthentication(
		deps.SessionRepository,
		createstore.New(
			deps.Logger,
			deps.StoreRepository,
			deps.Now,
		),
	)
	s.UpdateStore = auth.WithAuthentication(
		deps.SessionRepository,
		updatestore.New(
			deps.Logger,
			deps.StoreRepository,
		),
	)
	s.ListStores = liststores.New(
		deps.Logger,
		deps.StoreRepository,
	)
	s.GetStoreBySlug = getstorebyslug.New(
		deps.Logger,
		deps.StoreRepository,
		deps.ReviewRepository,
	)
	s.GetTagCounts = gettagcounts.New(
		deps.Logger,
		deps.StoreRepository,
	)
	s.GetTopStores = gettopstores.New(
		deps.Logger,
		deps.StoreRepository,
	)
	s.UploadStorePhoto = auth.WithAuthentication(
		deps.SessionRepository,
		uploadstorephoto.New(
			deps.Logger,
			deps.StoreRepository,
			deps.PhotoStorage,
			deps.PhotoKeyGenerator,
		),
	)

	s.CreateReview = auth.WithAuthentication(
		deps.SessionRepository,
		createreview.New(
			deps.Logger,
			deps.StoreRepository,
			deps.ReviewRepository,
			deps.Now,
		),
	)
	s.ListStoreReviews = liststorereviews.New(
		deps.Logger,
		deps.StoreRepository,
		deps.ReviewRepository,
	)

	return s
}
