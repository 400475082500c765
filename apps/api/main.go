package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	echoapi "github.com/karniella/revisions/apps/api/echo"
	"github.com/karniella/revisions/core"
	"github.com/karniella/revisions/core/content"
	"github.com/karniella/revisions/core/session"
	logsvc "github.com/karniella/revisions/services/logger"
	inmemdb "github.com/karniella/revisions/storage/inmem"
	"github.com/karniella/revisions/storage/jsonfile"
	redisdb "github.com/karniella/revisions/storage/redis"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// content store: one JSON document per entity collection
	db := jsonfile.Open(conf.DataDir)
	contentSvc := content.NewService(
		jsonfile.NewSubjectRepository(db),
		jsonfile.NewLessonRepository(db),
		jsonfile.NewQuizRepository(db),
	)

	// session store: redis when configured, in-memory otherwise
	var store session.Store
	if conf.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		defer func() { _ = client.Close() }()
		store = redisdb.NewSessionStore(client)
	} else {
		memStore := inmemdb.NewSessionStore()
		go sweepSessions(memStore, logger)
		store = memStore
	}
	sessionSvc := session.NewService(store, conf)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			ContentSvc: contentSvc,
			SessionSvc: sessionSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// sweepSessions periodically drops expired sessions from the in-memory store.
func sweepSessions(store *inmemdb.SessionStore, logger core.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		if n := store.DeleteExpired(); n > 0 {
			logger.Debug(fmt.Sprintf("session janitor: dropped %d expired session(s)", n))
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
