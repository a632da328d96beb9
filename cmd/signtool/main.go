package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mikiyas/txboard/internal/signing"
)

var (
	flagTimestamp string
	flagNow       bool
	flagMethod    string
	flagEndpoint  string
	flagBody      string
)

var rootCmd = &cobra.Command{
	Use:   "signtool",
	Short: "Compute provider request signatures",
	Long: `signtool computes the HMAC-SHA256 request signature the payment
provider expects, from a timestamp, HTTP method, endpoint path, and body.
Useful for reproducing and debugging signature rejections.

The signing secret is read from YAYA_API_SECRET.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := os.Getenv("YAYA_API_SECRET")
		if secret == "" {
			return errors.New("YAYA_API_SECRET is not set")
		}

		timestamp := flagTimestamp
		if flagNow {
			timestamp = signing.Timestamp(time.Now())
		}
		if timestamp == "" {
			return errors.New("either --timestamp or --now is required")
		}
		if flagEndpoint == "" {
			return errors.New("--endpoint is required")
		}
		if strings.Contains(flagEndpoint, "?") {
			return errors.New("endpoint must be a path without a query string")
		}

		method := strings.ToUpper(flagMethod)
		sig := signing.Sign([]byte(secret), timestamp, method, flagEndpoint, flagBody)

		fmt.Fprintf(cmd.OutOrStdout(), "timestamp: %s\nsignature: %s\n", timestamp, sig)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagTimestamp, "timestamp", "", "microsecond-scale timestamp to sign with")
	rootCmd.Flags().BoolVar(&flagNow, "now", false, "sign with a freshly generated timestamp")
	rootCmd.Flags().StringVar(&flagMethod, "method", "GET", "HTTP method of the request")
	rootCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "endpoint path, without host or query string")
	rootCmd.Flags().StringVar(&flagBody, "body", "", "exact JSON body of the request, empty for GET")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
