package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: MsgDocsShort,
		Long:  MsgDocsLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := listTopics()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgDocsAvailable)
				for _, t := range topics {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", t)
				}
				fmt.Fprintln(cmd.OutOrStdout(), MsgDocsHint)
				return nil
			}

			name := args[0]
			content, err := docsFS.ReadFile("docs/" + name + ".md")
			if err != nil {
				return errors.Newf(errors.ErrNotFound, "unknown topic %q (available: %s)",
					name, strings.Join(topics, ", "))
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(content)))
			return nil
		},
	}
}

func listTopics() ([]string, error) {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read embedded docs")
	}
	var topics []string
	for _, e := range entries {
		topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics, nil
}

// renderMarkdown renders with glamour, falling back to the raw text when the
// terminal renderer cannot be built.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
