package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

func ctx() context.Context { return context.Background() }

func nopLogger() zerolog.Logger { return zerolog.Nop() }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
