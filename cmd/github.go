package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/linkbio/internal/gateway"
	"github.com/naka-gawa/linkbio/internal/usecase"
)

// newWidget wires the GitHub gateway into a fresh activity widget.
func newWidget(logger logrus.FieldLogger) (*usecase.ActivityWidget, error) {
	githubGateway, err := gateway.NewGitHubGateway(gateway.Options{
		BaseURL: cfg.GitHub.BaseURL,
		Token:   cfg.GitHub.Token,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewActivityWidget(githubGateway, usecase.WidgetOptions{
		User:       cfg.GitHub.User,
		EventLimit: cfg.GitHub.EventLimit,
		RepoLimit:  cfg.GitHub.RepoLimit,
	}, logger), nil
}
