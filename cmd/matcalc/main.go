// SPDX-License-Identifier: MIT

// Command matcalc serves the interactive matrix calculator over HTTP.
//
// Usage:
//
//	matcalc -addr :8080 -max-dim 10 -places 4
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/katalvlaran/matcalc/builder"
	"github.com/katalvlaran/matcalc/dispatch"
	"github.com/katalvlaran/matcalc/form"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	maxDim := flag.Int("max-dim", builder.MaxDim, "largest row/column count accepted by the form")
	places := flag.Int("places", dispatch.DefaultDisplayPlaces, "decimal places in text results")
	flag.Parse()

	logger := log.New(os.Stderr, "matcalc: ", log.LstdFlags)
	if *maxDim < builder.MinDim || *maxDim > builder.MaxDim {
		logger.Fatalf("-max-dim must be in [%d,%d], got %d", builder.MinDim, builder.MaxDim, *maxDim)
	}
	if *places < 0 || *places > dispatch.MaxDisplayPlaces {
		logger.Fatalf("-places must be in [0,%d], got %d", dispatch.MaxDisplayPlaces, *places)
	}

	srv := &http.Server{
		Addr: *addr,
		Handler: form.New(
			form.WithLogger(logger),
			form.WithMaxDim(*maxDim),
			form.WithDisplayPlaces(*places),
		),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          logger,
	}
	logger.Printf("listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal(err)
	}
}
