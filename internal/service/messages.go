package service

import (
	"fmt"
	"strings"

	"github.com/tracker-tv/commit-sentinel/models"
)

func alertSubject(f models.Finding) string {
	return fmt.Sprintf("[ACTION REQUIRED] Secrets discovered in %s", f.RepositoryName)
}

func alertMessage(f models.Finding) string {
	return fmt.Sprintf("%s credentials were identified in file %s, committed by %s on branch %s (%s).",
		f.RuleLabel, f.File, f.CommitterEmail, f.Branch, f.CommitID)
}

func lockSubject(f models.Finding) string {
	return fmt.Sprintf("[ACTION REQUIRED] %s was locked to protect committed credentials", f.RepositoryName)
}

func lockMessage(f models.Finding) string {
	return alertMessage(f) + " The repository has been locked for normal users and an admin or superuser is required to unlock."
}

func revertSubject(f models.Finding) string {
	return fmt.Sprintf("[ACTION REQUIRED] %s required git reset --hard because of committed credentials", f.RepositoryName)
}

func revertMessage(f models.Finding, commands []string) string {
	var b strings.Builder
	b.WriteString(alertMessage(f))
	b.WriteString(" The following commands were executed:")
	for i, c := range commands {
		fmt.Fprintf(&b, " %d) %s", i+1, c)
	}
	return b.String()
}
