package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"contactrelay/internal/contactform"
	"contactrelay/internal/domain"
	"contactrelay/internal/logging"
)

const defaultEndpoint = "http://localhost:8000/send-contact-email"

type submitOptions struct {
	fields   contactform.Fields
	endpoint string
	apiKey   string
	timeout  time.Duration
	verbose  bool
}

func main() {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the contact command
func newRootCmd() *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact relay",
		Long: `Fill in the contact form from the command line and submit it.

Fields are validated locally first; nothing is sent when any field is
invalid. The relay endpoint defaults to $CONTACT_ENDPOINT.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	endpoint := os.Getenv("CONTACT_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.fields.Name, "name", "", "your name")
	flags.StringVar(&opts.fields.Email, "email", "", "your email address")
	flags.StringVar(&opts.fields.Subject, "subject", "", "message subject")
	flags.StringVarP(&opts.fields.Message, "message", "m", "", "message text")
	flags.StringVar(&opts.endpoint, "endpoint", endpoint, "relay endpoint URL")
	flags.StringVar(&opts.apiKey, "api-key", os.Getenv("CONTACT_API_KEY"), "gateway API key sent as bearer token")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log state transitions")

	return cmd
}

func runSubmit(ctx context.Context, stdout, stderr io.Writer, opts *submitOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	formOpts := []contactform.Option{}
	if opts.verbose {
		logger := logging.MustBuild("debug", "dev")
		defer func() { _ = logger.Sync() }()
		formOpts = append(formOpts,
			contactform.WithLogger(logger),
			contactform.OnStateChange(func(s contactform.State) {
				logger.Debug("form state changed", zap.Stringer("state", s))
			}),
		)
	}

	client := contactform.NewClient(opts.endpoint, opts.timeout, contactform.WithAPIKey(opts.apiKey))
	form := contactform.NewForm(client, formOpts...)
	defer form.Close()

	res, err := form.Submit(ctx, opts.fields)
	switch {
	case errors.Is(err, contactform.ErrInvalid):
		for _, field := range []string{domain.FieldName, domain.FieldEmail, domain.FieldSubject, domain.FieldMessage} {
			if msg, ok := res.FieldErrors[field]; ok {
				fmt.Fprintf(stderr, "%s: %s\n", field, msg)
			}
		}
		return err
	case err != nil:
		fmt.Fprintf(stderr, "%s\n%s\n", res.Toast.Title, res.Toast.Description)
		var relayErr *contactform.RelayError
		if errors.As(err, &relayErr) && relayErr.Message != "" {
			fmt.Fprintf(stderr, "(%s)\n", relayErr.Message)
		}
		return err
	}

	fmt.Fprintf(stdout, "%s\n%s\n", res.Toast.Title, res.Toast.Description)
	return nil
}
