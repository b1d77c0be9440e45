package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vanderheijden86/weavetour/pkg/debug"
	"github.com/vanderheijden86/weavetour/pkg/web"
)

// runServer is swapped in tests.
var runServer = func(ctx context.Context, srv *web.Server, addr string) error {
	return srv.Run(ctx, addr)
}

// serverLogger returns the request logger: the debug logger when debugging
// is on, otherwise a no-op.
func serverLogger() *zap.Logger {
	if debug.Enabled() {
		return debug.Logger().Named("web")
	}
	return zap.NewNop()
}

// browseURL turns a listen address into a URL a browser can open. An empty
// or unspecified host becomes the loopback address.
func browseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr string
		open bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tutorial over HTTP",
		Long: `Starts a local web server hosting the tutorial. All browser tabs share one
tour position. Stop it with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			srv, err := web.New(web.Options{Logger: serverLogger()})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			url := browseURL(addr)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving Weave Evaluations tutorial at %s\n", url)
			if open {
				if err := openURL(url); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open browser: %v\n", err)
				}
			}
			return runServer(ctx, srv, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, 127.0.0.1:8420)")
	cmd.Flags().BoolVar(&open, "open", false, "open the tutorial in the default browser")
	return cmd
}
