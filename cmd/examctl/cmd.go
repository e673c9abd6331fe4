package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/lshigami/examsched/internal/dto"
	"github.com/lshigami/examsched/internal/service"
	"github.com/olekukonko/tablewriter"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	resultSvc service.ResultService
	out       io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  pending                        - list exams awaiting a result")
	fmt.Fprintln(cli.out, "  pass -id EXAM_ID               - record a pass")
	fmt.Fprintln(cli.out, "  fail -id EXAM_ID               - record a fail and book the next recovery exam")
	fmt.Fprintln(cli.out, "  reschedule -id EXAM_ID -date YYYY-MM-DD - move a pending exam")
	fmt.Fprintln(cli.out, "  recover -id EXAM_ID            - book the missing recovery exam of a failed exam")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	fs := flag.NewFlagSet(args[1], flag.ContinueOnError)
	fs.SetOutput(cli.out)
	examID := fs.String("id", "", "The exam ID (UUID).")
	date := fs.String("date", "", "The new exam date, YYYY-MM-DD.")
	if err := fs.Parse(args[2:]); err != nil {
		return errHelp
	}

	switch args[1] {
	case "pending":
		return cli.pending(ctx)
	case "pass", "fail", "recover":
		id, err := cli.parseID(fs, *examID)
		if err != nil {
			return err
		}
		if args[1] == "recover" {
			return cli.scheduleRecovery(ctx, id)
		}
		return cli.record(ctx, id, args[1] == "pass")
	case "reschedule":
		id, err := cli.parseID(fs, *examID)
		if err != nil {
			return err
		}
		if *date == "" {
			fs.Usage()
			return errHelp
		}
		return cli.reschedule(ctx, id, *date)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) parseID(fs *flag.FlagSet, raw string) (uuid.UUID, error) {
	if raw == "" {
		fs.Usage()
		return uuid.Nil, errHelp
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid exam id %q: %w", raw, err)
	}
	return id, nil
}

func (cli *commandLine) pending(ctx context.Context) error {
	exams, err := cli.resultSvc.PendingExams(ctx)
	if err != nil {
		return err
	}
	color.New(color.FgYellow).Fprintf(cli.out, "\n%d exam(s) awaiting a result\n", len(exams))
	cli.printExams(exams)
	return nil
}

func (cli *commandLine) record(ctx context.Context, id uuid.UUID, passed bool) error {
	resp, err := cli.resultSvc.RecordOutcome(ctx, id, passed)
	if err != nil {
		return err
	}

	switch {
	case passed:
		color.New(color.FgGreen).Fprintf(cli.out, "%s approved on %s\n", resp.Exam.StudentName, resp.Exam.ExamType)
	case resp.RetakeModule:
		color.New(color.FgRed).Fprintf(cli.out, "%s failed %s: the module must be retaken\n", resp.Exam.StudentName, resp.Exam.ExamType)
	default:
		color.New(color.FgRed).Fprintf(cli.out, "%s failed %s\n", resp.Exam.StudentName, resp.Exam.ExamType)
	}
	if resp.Recovery != nil {
		color.New(color.FgCyan).Fprintf(cli.out, "Recovery %s booked for %s\n", resp.Recovery.ExamType, resp.Recovery.ExamDate)
		cli.printExams([]dto.ExamResponseDTO{*resp.Recovery})
	}
	return nil
}

func (cli *commandLine) reschedule(ctx context.Context, id uuid.UUID, date string) error {
	exam, err := cli.resultSvc.OverrideRecoveryDate(ctx, id, date)
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(cli.out, "%s %s moved to %s\n", exam.StudentName, exam.ExamType, exam.ExamDate)
	return nil
}

func (cli *commandLine) scheduleRecovery(ctx context.Context, id uuid.UUID) error {
	resp, err := cli.resultSvc.ScheduleRecovery(ctx, id)
	if err != nil {
		return err
	}
	if resp.Created {
		color.New(color.FgGreen).Fprintf(cli.out, "Recovery %s booked for %s\n", resp.Recovery.ExamType, resp.Recovery.ExamDate)
	} else {
		color.New(color.FgYellow).Fprintf(cli.out, "Recovery %s already booked for %s\n", resp.Recovery.ExamType, resp.Recovery.ExamDate)
	}
	cli.printExams([]dto.ExamResponseDTO{resp.Recovery})
	return nil
}

func (cli *commandLine) printExams(exams []dto.ExamResponseDTO) {
	table := tablewriter.NewWriter(cli.out)
	table.SetHeader([]string{"ID", "Student", "Type", "Date", "Computer", "Shift", "Class"})
	for _, e := range exams {
		table.Append([]string{
			e.ID.String(),
			e.StudentName,
			e.ExamType,
			e.ExamDate,
			strconv.Itoa(e.ComputerNumber),
			e.Shift,
			e.ClassTime,
		})
	}
	table.Render()
}
