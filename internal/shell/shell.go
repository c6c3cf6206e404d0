package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Shell is the interactive front end: it prompts for filters, runs the
// analysis, renders the report and offers raw data and restart.
type Shell struct {
	Runner    *pipeline.Runner
	PageSize  int
	ExportDir string // when set, the user is offered a report export

	in  *bufio.Scanner
	out io.Writer
}

// New creates a shell reading answers from in and writing to out
func New(in io.Reader, out io.Writer, runner *pipeline.Runner, pageSize int) *Shell {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &Shell{Runner: runner, PageSize: pageSize, in: bufio.NewScanner(in), out: out}
}

// Run loops until the user declines to restart or input ends
func (s *Shell) Run(ctx context.Context) error {
	for {
		criteria, err := s.GetFilters()
		if err != nil {
			return quitOK(err)
		}

		report, table, err := s.Runner.Run(ctx, criteria)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(s.out, "Could not analyze the %s dataset: %v\n", criteria.City, err)
		} else {
			RenderReport(s.out, report)
			if err := s.offerExport(report); err != nil {
				return quitOK(err)
			}
			if err := s.ShowRawData(table); err != nil {
				return quitOK(err)
			}
		}

		restart, err := s.ask("\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return quitOK(err)
		}
		if restart != "yes" {
			return nil
		}
	}
}

// GetFilters prompts for city, month and day until each is valid
func (s *Shell) GetFilters() (model.FilterCriteria, error) {
	fmt.Fprintln(s.out, "Let's explore some US bikeshare data!")

	city, err := s.promptUntil("Enter the name of the city you want to analyze (Chicago, New York City, Washington): ",
		"Invalid city. Please try again.", model.IsCity)
	if err != nil {
		return model.FilterCriteria{}, err
	}
	month, err := s.promptUntil("Enter the name of the month you want to filter by (or 'all' to apply no month filter): ",
		"Invalid month. Please try again.", model.IsMonth)
	if err != nil {
		return model.FilterCriteria{}, err
	}
	day, err := s.promptUntil("Enter the name of the day you want to filter by (or 'all' to apply no day filter): ",
		"Invalid day. Please try again.", model.IsDay)
	if err != nil {
		return model.FilterCriteria{}, err
	}

	fmt.Fprintln(s.out, rule)
	return model.NewFilterCriteria(city, month, day)
}

// ShowRawData shows raw rows while the user answers yes. Each round asks
// how many rows to show, defaulting to PageSize, and continues where the
// previous round stopped.
func (s *Shell) ShowRawData(table *model.Table) error {
	question := "\nWould you like to view the raw data? Enter yes or no.\n"
	for offset := 0; offset < table.Len(); {
		answer, err := s.ask(question)
		if err != nil {
			return err
		}
		if answer != "yes" {
			return nil
		}

		n, err := s.askRowCount(table.Len() - offset)
		if err != nil {
			return err
		}
		RenderRows(s.out, table.Page(offset, n))
		offset += n
		question = "\nWould you like to view more raw data? Enter yes or no.\n"
	}
	if table.Len() > 0 {
		fmt.Fprintf(s.out, "\nNo more rows to display (%d total).\n", table.Len())
	}
	return nil
}

// askRowCount prompts until the answer is a row count in [1, remaining].
// An empty answer means PageSize, capped at remaining.
func (s *Shell) askRowCount(remaining int) (int, error) {
	for {
		answer, err := s.ask(fmt.Sprintf("Enter the number of rows you want to view (default %d): ", s.PageSize))
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return min(s.PageSize, remaining), nil
		}
		n, err := strconv.Atoi(answer)
		switch {
		case err != nil || n <= 0:
			fmt.Fprintln(s.out, "Please enter a positive whole number.")
		case n > remaining:
			fmt.Fprintf(s.out, "The number of rows is greater than the number of rows left to display (%d).\n", remaining)
		default:
			return n, nil
		}
	}
}

func (s *Shell) offerExport(report *model.Report) error {
	if s.ExportDir == "" {
		return nil
	}
	answer, err := s.ask("\nWould you like to export this report? Enter yes or no.\n")
	if err != nil || answer != "yes" {
		return err
	}
	res, err := pipeline.NewExportManager(report.RunID, s.ExportDir).ExportReport(report, pipeline.DefaultReportName(report.Criteria))
	if err != nil {
		logrus.WithError(err).Error("export failed")
		fmt.Fprintf(s.out, "Export failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "Report written to %s\n", res.Path)
	return nil
}

// promptUntil re-prompts until valid accepts the normalized answer
func (s *Shell) promptUntil(question, retry string, valid func(string) bool) (string, error) {
	for {
		answer, err := s.ask(question)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		fmt.Fprintln(s.out, retry)
	}
}

// ask prints question and returns the trimmed, lowercased answer
func (s *Shell) ask(question string) (string, error) {
	fmt.Fprint(s.out, question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return model.Normalize(strings.TrimRight(s.in.Text(), "\r")), nil
}

// quitOK treats end of input as a normal exit
func quitOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
