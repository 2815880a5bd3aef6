package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/socratic-tutor/internal/store"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to socratic.db")
	last := flag.Int("last", 20, "show N most recent interactions")
	id := flag.Int64("id", 0, "show single interaction detail")
	learner := flag.String("learner", "", "filter list to one learner")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/socratic.db [--last N] [--id N] [--learner id] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *id != 0 {
		if err := runDetailMode(st, *id, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(st, *last, *learner, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

func runListMode(st *store.Store, last int, learnerFilter string, jsonOut bool) error {
	summaries, err := st.RecentInteractions(last)
	if err != nil {
		return err
	}
	if learnerFilter != "" {
		filtered := summaries[:0]
		for _, s := range summaries {
			if s.LearnerID == learnerFilter {
				filtered = append(filtered, s)
			}
		}
		summaries = filtered
	}
	if len(summaries) == 0 {
		fmt.Fprintln(os.Stderr, "no interactions found")
		return nil
	}

	// Store returns DESC, reverse for chronological
	for i, j := 0, len(summaries)-1; i < j; i, j = i+1, j-1 {
		summaries[i], summaries[j] = summaries[j], summaries[i]
	}

	if jsonOut {
		return printJSON(summaries)
	}
	return printListTable(summaries)
}

func printListTable(rows []store.InteractionSummary) error {
	fmt.Printf("%-6s  %-12s  %8s  %7s  %7s  %8s  %-20s  %s\n",
		"ID", "Learner", "Reliance", "Overlap", "Recall", "Perplex", "Time", "Question")
	fmt.Printf("%-6s+-%-12s+-%8s+-%7s+-%7s+-%8s+-%-20s+-%s\n",
		"------", "------------", "--------", "-------", "-------", "--------", "--------------------", "--------------------")

	for _, r := range rows {
		fmt.Printf("%-6d  %-12s  %8.2f  %7.3f  %7.3f  %8.2f  %-20s  %s\n",
			r.ID, shortID(r.LearnerID), r.RelianceScore, r.Overlap, r.Recall,
			r.Perplexity, shortTime(r.CreatedAt), truncate(r.Question, 48))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	store.InteractionRecord
	Metrics *store.MetricsRecord `json:"metrics,omitempty"`
}

func runDetailMode(st *store.Store, id int64, jsonOut bool) error {
	rec, err := st.GetInteraction(id)
	if err != nil {
		return err
	}
	out := detailOutput{InteractionRecord: rec}
	if met, err := st.GetMetrics(id); err == nil {
		out.Metrics = &met
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Interaction: %d\n", rec.ID)
	fmt.Printf("Session:     %s\n", rec.SessionID)
	fmt.Printf("Learner:     %s\n", rec.LearnerID)
	fmt.Printf("Created:     %s\n", rec.CreatedAt.Format("2006-01-02T15:04:05Z"))
	fmt.Printf("Difficulty:  %.1f\n", rec.Difficulty)
	fmt.Printf("Reliance:    %.2f (answer %d tokens / question %d tokens)\n",
		rec.RelianceScore, rec.AnswerTokens, rec.QuestionTokens)

	fmt.Printf("\nQuestion:\n  %s\n", rec.Question)
	if rec.ContextJSON != "" {
		fmt.Printf("\nContext:\n  %s\n", rec.ContextJSON)
	}
	fmt.Printf("\nFinal answer:\n%s\n", indent(rec.FinalAnswer))
	fmt.Printf("\nFollow-ups:\n  1. %s\n  2. %s\n", rec.SocraticQ1, rec.SocraticQ2)

	if out.Metrics != nil {
		fmt.Printf("\nMetrics:\n")
		fmt.Printf("  Overlap:     %.4f\n", out.Metrics.Overlap)
		fmt.Printf("  Recall:      %.4f\n", out.Metrics.Recall)
		fmt.Printf("  Perplexity:  %.4f\n", out.Metrics.Perplexity)
	}

	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func shortTime(ts string) string {
	if len(ts) > 19 {
		return ts[:19]
	}
	return ts
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > max {
		return s[:max-1] + "…"
	}
	return s
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

// #endregion output
