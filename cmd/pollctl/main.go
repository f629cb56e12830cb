package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vncsmyrnk/mysite/internal/adapters/client/pollsapi"
	"github.com/vncsmyrnk/mysite/internal/config"
	"github.com/vncsmyrnk/mysite/internal/core/domain"
	"github.com/vncsmyrnk/mysite/internal/logging"
)

const usage = `usage: pollctl [flags] <command> [args]

commands:
  list [limit]                  list published questions
  show <id>                     show a question and its choices
  create <text> [choice...]     create a question published now
  vote <id> <choice-id>         vote for a choice
  results <id>                  show vote counts
  delete <id>                   delete a question`

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		logrus.Fatal(err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatal(err)
	}

	if len(cfg.Args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := pollsapi.New(cfg.APIURL, 10*time.Second)
	if err := run(ctx, client, cfg.Args[0], cfg.Args[1:]); err != nil {
		log.WithError(err).WithField("command", cfg.Args[0]).Fatal("command failed")
	}
}

func run(ctx context.Context, client *pollsapi.Client, command string, args []string) error {
	switch command {
	case "list":
		limit := 0
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid limit %q", args[0])
			}
			limit = n
		}
		questions, err := client.ListQuestions(ctx, limit)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			fmt.Println("No polls are available.")
			return nil
		}
		for _, q := range questions {
			marker := ""
			if q.WasPublishedRecently {
				marker = " (new)"
			}
			fmt.Printf("%s  %s  %s%s\n", q.ID, q.PubDate.Format(time.RFC3339), q.QuestionText, marker)
		}
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("show takes a question id")
		}
		q, err := client.GetQuestion(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\npublished %s\n", q.QuestionText, q.PubDate.Format(time.RFC3339))
		for _, c := range q.Choices {
			fmt.Printf("  %s  %s\n", c.ID, c.ChoiceText)
		}
	case "create":
		if len(args) < 1 {
			return fmt.Errorf("create takes the question text")
		}
		q, err := client.CreateQuestion(ctx, pollsapi.CreateQuestion{QuestionText: args[0], Choices: args[1:]})
		if err != nil {
			return err
		}
		fmt.Println(q.ID)
	case "vote":
		if len(args) != 2 {
			return fmt.Errorf("vote takes a question id and a choice id")
		}
		results, err := client.Vote(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		printResults(results)
	case "results":
		if len(args) != 1 {
			return fmt.Errorf("results takes a question id")
		}
		results, err := client.Results(ctx, args[0])
		if err != nil {
			return err
		}
		printResults(results)
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete takes a question id")
		}
		return client.DeleteQuestion(ctx, args[0])
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
	return nil
}

func printResults(results *domain.QuestionResults) {
	fmt.Println(results.Question.QuestionText)
	for _, c := range results.Choices {
		fmt.Printf("  %-30s %5d  %5.1f%%\n", c.Choice.ChoiceText, c.VoteCount, c.Percentage)
	}
	fmt.Printf("  %-30s %5d\n", "total", results.TotalVotes)
}
