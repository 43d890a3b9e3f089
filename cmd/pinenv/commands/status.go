package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the project",
		Args:  cobra.NoArgs,
		RunE: c.projectRunE(func(cmd *cobra.Command, p Project, _ []string) error {
			status, err := p.Status()
			if err != nil {
				return err
			}
			if c.flags.json {
				return writeStatusJSON(cmd.OutOrStdout(), status)
			}
			return writeStatus(cmd.OutOrStdout(), status, style.New(c.color))
		}),
	}
}

type statusJSON struct {
	State       string     `json:"state"`
	Project     string     `json:"project"`
	Venv        string     `json:"venv"`
	Lock        string     `json:"lock"`
	HasVenv     bool       `json:"has_venv"`
	HasLock     bool       `json:"has_lock"`
	InSync      bool       `json:"in_sync"`
	InstalledAt *time.Time `json:"installed_at,omitempty"`
}

func writeStatusJSON(w io.Writer, s domain.Status) error {
	out := statusJSON{
		State:   s.State.String(),
		Project: s.Paths.Project,
		Venv:    s.Paths.Venv,
		Lock:    s.Paths.Lock,
		HasVenv: s.HasVenv,
		HasLock: s.HasLock,
		InSync:  s.InSync,
	}
	if s.Installed != nil {
		out.InstalledAt = &s.Installed.InstalledAt
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeStatus(w io.Writer, s domain.Status, st style.Styles) error {
	lines := []string{
		st.Title.Render(s.State.String()),
		row(st, "project", s.Paths.Project),
		row(st, "virtualenv", presence(st, s.HasVenv)+" "+s.Paths.Venv),
		row(st, "lock", presence(st, s.HasLock)+" "+s.Paths.Lock),
		row(st, "installed", installed(st, s)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func row(st style.Styles, key, value string) string {
	return st.Key.Render(fmt.Sprintf("%-12s", key)) + value
}

func presence(st style.Styles, ok bool) string {
	if ok {
		return st.OK.Render(style.Check)
	}
	return st.Bad.Render(style.Cross)
}

func installed(st style.Styles, s domain.Status) string {
	switch {
	case s.Installed == nil:
		return st.Muted.Render(style.Circle + " never")
	case s.InSync:
		return st.OK.Render(style.Dot+" in sync") +
			st.Muted.Render(" since "+s.Installed.InstalledAt.Format(time.RFC3339))
	default:
		return st.Warn.Render(style.Warning + " lock changed since last install, run `pinenv install`")
	}
}
