package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	resourceclient "github.com/mantenimiento/go-resourceclient"
	"github.com/mantenimiento/go-resourceclient/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		baseURL  string
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:           "resourcectl",
		Short:         "Query a REST resource and print the raw response",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", cfg.BaseURL, "base URL the lookup segment is appended to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	newClient := func() (*resourceclient.Client, error) {
		c := config.Config{BaseURL: baseURL, LogLevel: logLevel}
		log, err := c.Logger()
		if err != nil {
			return nil, err
		}
		return resourceclient.NewClient(
			resourceclient.WithBaseURL(c.BaseURL),
			resourceclient.WithLogger(log),
		)
	}

	lookup := func(cmd *cobra.Command, find func(*resourceclient.Client) (*resourceclient.Response, error)) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		resp, err := find(client)
		if err != nil {
			return errors.Wrap(err, "request failed")
		}
		return printResponse(cmd.OutOrStdout(), resp)
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "all",
			Short: "GET the base URL",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return lookup(cmd, func(c *resourceclient.Client) (*resourceclient.Response, error) {
					return c.FindAll()
				})
			},
		},
		&cobra.Command{
			Use:   "name <name>",
			Short: "GET the base URL with a name appended",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return lookup(cmd, func(c *resourceclient.Client) (*resourceclient.Response, error) {
					return c.FindByName(args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "id <id>",
			Short: "GET the base URL with an id appended",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return lookup(cmd, func(c *resourceclient.Client) (*resourceclient.Response, error) {
					return c.FindByID(args[0])
				})
			},
		},
	)

	return rootCmd
}

// printResponse writes the status line followed by the unparsed body.
func printResponse(w io.Writer, resp *resourceclient.Response) error {
	defer resp.Body.Close()

	if _, err := fmt.Fprintln(w, resp.Status); err != nil {
		return err
	}
	_, err := io.Copy(w, resp.Body)
	return err
}
