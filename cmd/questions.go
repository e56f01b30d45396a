package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"prept/logging"
)

// QuestionsCmd generates interview questions without opening a session
type QuestionsCmd struct {
	Position string `arg:"" help:"Target position, e.g. 'Backend Developer'"`
	Format   string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Keywords string `help:"Comma-separated resume keywords"`
	Num      int    `help:"Number of questions to generate" default:"5"`
}

// Run executes the questions command
func (q *QuestionsCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer container.Close()

	keywords := []string{}
	for _, part := range strings.Split(q.Keywords, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	logging.Logger.Info("Generating questions",
		"position", q.Position,
		"keywords", len(keywords),
		"num", q.Num)

	questions, err := container.InterviewService.GenerateQuestions(
		context.Background(), q.Position, keywords, q.Num)
	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	if q.Format == "json" {
		data, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for i, question := range questions {
		fmt.Printf("%d. %s\n", i+1, question)
	}
	return nil
}
