package deps

import (
	"context"
	"fmt"
	"storemap/internal/config"
	dl "storemap/internal/core/domain/logging"
	drl "storemap/internal/core/domain/rate_limiter"
	"storemap/internal/core/domain/store"
	duow "storemap/internal/core/domain/unit_of_work"
	"storemap/internal/core/domain/user"
	dbstore "storemap/internal/db/store"
	uow "storemap/internal/db/unit_of_work"
	dbuser "storemap/internal/db/user"
	"storemap/internal/implementations/email"
	"storemap/internal/implementations/logging"
	passwordhasher "storemap/internal/implementations/password_hasher"
	passwordresettoken "storemap/internal/implementations/password_reset_token"
	photokeygenerator "storemap/internal/implementations/photo_key_generator"
	photostorage "storemap/internal/implementations/photo_storage"
	ratelimiter "storemap/internal/implementations/rate_limiter"
	"storemap/internal/implementations/session"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client

	Now func() time.Time

	UnitOfWork        duow.UnitOfWork
	UserRepository    user.UserRepository
	SessionRepository user.SessionRepository
	StoreRepository   store.StoreRepository
	ReviewRepository  store.ReviewRepository

	RateLimiter drl.RateLimiter

	UserSessionTokenGenerator   user.SessionTokenGenerator
	PasswordHasher              user.PasswordHasher
	PasswordResetTokenGenerator user.PasswordResetTokenGenerator
	PasswordResetTokenSender    user.PasswordResetTokenSender

	PhotoStorage      store.PhotoStorage
	PhotoKeyGenerator store.PhotoKeyGenerator
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.StoreRepository = dbstore.NewPgxRepository(deps.DB)
	deps.ReviewRepository = dbstore.NewPgxReviewRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.UserSessionTokenGenerator = session.NewUUID()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.PasswordResetTokenGenerator = passwordresettoken.NewGenerator()
	deps.PasswordResetTokenSender = email.NewResetTokenSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.Config.AwsEmailPasswordResetBaseUrl,
	)

	deps.initPhotoStorage()
	deps.PhotoKeyGenerator = photokeygenerator.NewUUID("photos/")

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initPhotoStorage() {
	minioClient, err := photostorage.NewMinioClient(
		deps.Config.MinioEndpoint,
		deps.Config.MinioAccessKey,
		deps.Config.MinioSecretKey,
		deps.Config.MinioUseSSL,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create minio client.", dl.Entry("err", err))
		panic(err)
	}
	deps.PhotoStorage = photostorage.NewMinio(minioClient, deps.Config.MinioPhotoBucket)
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
