package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/render"
	"github.com/spigell/talent-alchemy/internal/screen"
	"github.com/spigell/talent-alchemy/internal/talent"
	"github.com/spigell/talent-alchemy/internal/tui"
)

var profileCmd = &cobra.Command{
	Use:   "profile <id|/candidates/{id}/profile>",
	Short: "Show a candidate profile, screening questions and outreach drafts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runProfile(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileCmd.Flags().BoolP("plain", "p", false, "print the profile instead of starting the interactive screen")
	profileCmd.Flags().String("tab", string(screen.TabProfile), "tab to print in plain mode: profile, screening or outreach")
	profileCmd.Flags().StringP("template", "t", "", "outreach email template: initial_outreach, interview_invitation, congratulations or regret")
	profileCmd.Flags().Bool("send", false, "send the printed outreach draft to the candidate")
}

func runProfile(cmd *cobra.Command, arg string) {
	ctx := cmd.Context()
	plain, _ := cmd.Flags().GetBool("plain")
	s := setup(!plain)

	id, err := screen.ParseProfilePath(arg)
	if err != nil {
		s.logger.Fatal("parsing candidate", zap.Error(err))
	}

	if !plain {
		if err := tui.Run(ctx, s.client, s.logger, tui.Options{Path: screen.ProfilePath(id)}); err != nil {
			s.logger.Fatal("running the profile screen", zap.Error(err))
		}
		return
	}

	opts, err := profileOptions(cmd, s.config)
	if err != nil {
		s.logger.Fatal("reading profile flags", zap.Error(err))
	}

	p := plainProfile(ctx, s, id, opts)
	fmt.Fprintln(cmd.OutOrStdout(), render.New(s.width()).Profile(p, render.ProfileOptions{}))

	if p.State() == screen.Failed {
		s.logger.Fatal("exiting", zap.String("reason", p.Error()))
	}
	if p.SendStatus() == screen.SendFailed {
		s.logger.Fatal("exiting", zap.String("reason", p.SendStatus()))
	}
}

type plainProfileOptions struct {
	tab      screen.Tab
	template talent.Template
	send     bool
}

func profileOptions(cmd *cobra.Command, config *Config) (plainProfileOptions, error) {
	opts := plainProfileOptions{tab: screen.TabProfile, template: talent.TemplateInitialOutreach}

	rawTab, _ := cmd.Flags().GetString("tab")
	tab, ok := screen.ParseTab(rawTab)
	if !ok {
		return opts, fmt.Errorf("unknown tab %q", rawTab)
	}
	opts.tab = tab

	rawTemplate, _ := cmd.Flags().GetString("template")
	if rawTemplate == "" && config.Outreach != nil {
		rawTemplate = config.Outreach.Template
	}
	if rawTemplate != "" {
		template, err := talent.ParseTemplate(rawTemplate)
		if err != nil {
			return opts, err
		}
		opts.template = template
	}

	opts.send, _ = cmd.Flags().GetBool("send")
	if opts.send && opts.tab != screen.TabOutreach {
		return opts, fmt.Errorf("--send needs --tab %s", screen.TabOutreach)
	}

	return opts, nil
}

// plainProfile drives the profile screen through the same steps as the
// interactive one: load, pick the template, switch tabs, optionally send.
func plainProfile(ctx context.Context, s *session, id string, opts plainProfileOptions) *screen.Profile {
	p := screen.NewProfile(s.logger)

	p.ApplyAll(screen.Run(ctx, s.client, p.Open(id)...))
	if p.State() != screen.Ready {
		return p
	}

	p.SelectTemplate(opts.template)
	p.ApplyAll(screen.Run(ctx, s.client, p.SelectTab(opts.tab)...))

	if !opts.send {
		return p
	}

	req, ok := p.Send()
	if !ok {
		s.logger.Warn("nothing to send", zap.String("hint", "the candidate needs an email address and a generated draft"))
		return p
	}
	p.ApplyAll(screen.Run(ctx, s.client, req))

	return p
}
