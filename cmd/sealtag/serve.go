package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/wansing/sealtag"
	"github.com/wansing/sealtag/content"
	"github.com/wansing/sealtag/log"
)

func newServeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the content directory over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())

			secret := cfg.Secret
			if secret == "" {
				var bs = make([]byte, 16)
				if _, err := rand.Read(bs); err != nil {
					return fmt.Errorf("making random secret: %w", err)
				}
				secret = base64.RawURLEncoding.EncodeToString(bs)
				l.Info("generated temporary reload secret", "secret", secret)
			}

			srv, err := newServer(cfg)
			if err != nil {
				return err
			}
			srv.Log = l
			if err := srv.Reload(); err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.HandleFunc("/errors", srv.ErrorsHandler())
			mux.HandleFunc("/reload", srv.ReloadHandler(secret))
			mux.HandleFunc("/git-reload", sealtag.GitReloadHandler(secret, srv.FS.GitDir, srv.Reload))
			mux.Handle("/", srv)

			l.Info("listening", "addr", cfg.Listen, "markdown", cfg.Markdown)
			return http.ListenAndServe(cfg.Listen, mux)
		},
	}
}

func newServer(cfg *Config) (*sealtag.Server, error) {
	site, err := cfg.Site()
	if err != nil {
		return nil, err
	}
	return &sealtag.Server{
		Config: sealtag.Config{
			Content: map[string]sealtag.ContentFunc{
				".html": content.HTML{Site: site}.Parse,
				".ics":  content.Calendar{}.Parse,
				".md":   content.Markdown{Site: site}.Parse,
			},
		},
		FS: sealtag.DirFS(cfg.Dir),
	}, nil
}
