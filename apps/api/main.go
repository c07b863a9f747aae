package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/edulab/markboard/apps/api/echo"
	"github.com/edulab/markboard/core"
	"github.com/edulab/markboard/core/board"
	"github.com/edulab/markboard/core/student"
	logsvc "github.com/edulab/markboard/services/logger"
	inmemdb "github.com/edulab/markboard/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening roster store: %v", err), err)
	}
	svc := student.NewService(inmemdb.NewStudentRepository(db))

	hub := echoapi.NewHub(logger, conf)
	brd := board.New(svc, hub, logger, conf)

	// the roster is transient; start every process with the demo records
	for _, ns := range student.SampleRoster() {
		if _, err := svc.Create(ns); err != nil {
			logger.Fatal(fmt.Sprintf("seeding sample roster: %v", err), err)
		}
	}
	if err := brd.Refresh(); err != nil {
		logger.Fatal(fmt.Sprintf("initial render: %v", err), err)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			StudentSvc: svc,
			Board:      brd,
			Hub:        hub,
			Validate:   validate,
			Translator: translator,
		},
	)
	server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
