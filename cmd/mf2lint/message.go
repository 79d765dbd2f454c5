package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goliatone/go-mf2lint"
)

type messageVerdict struct {
	Plurals      *mf2lint.Report `json:"plurals"`
	Placeholders *mf2lint.Report `json:"placeholders,omitempty"`
}

// runMessage validates one data model document, printing the verdict of each
// check on its own line. With -against the message is also compared with a
// source message for placeholder consistency.
func runMessage(args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("message", flag.ExitOnError)
	locale := fs.String("locale", "", "Locale of the message (required)")
	against := fs.String("against", "", "Source message document to compare placeholders with")
	fs.StringVar(&s.SourceLocale, "source", s.SourceLocale, "Locale of the -against message")
	s.bind(fs)
	fs.Parse(args)

	if *locale == "" {
		return fmt.Errorf("--locale is required")
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one message file is required")
	}
	if err := s.validate(); err != nil {
		return err
	}

	msg, err := readMessage(fs.Arg(0))
	if err != nil {
		return err
	}

	logger := newLogger(s.LogLevel, os.Stderr)
	validator, err := mf2lint.NewValidator(append(s.options(), mf2lint.WithLogger(logger))...)
	if err != nil {
		return err
	}

	verdict := messageVerdict{Plurals: validator.ValidateMessageReport(*locale, msg)}
	if *against != "" {
		source, err := readMessage(*against)
		if err != nil {
			return err
		}
		verdict.Placeholders = validator.ComparePlaceholders(s.SourceLocale, *locale, source, msg)
	}

	if s.Format == "json" {
		if err := outputJSON(verdict); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(stdout, verdict.Plurals)
		if verdict.Placeholders != nil {
			fmt.Fprintln(stdout, verdict.Placeholders)
		}
	}

	if !verdict.Plurals.OK() || !verdict.Placeholders.OK() {
		return errDefects
	}
	return nil
}

func readMessage(path string) (mf2lint.Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mf2lint.Message{}, err
	}
	msg, err := mf2lint.DecodeMessage(path, data)
	if err != nil {
		return mf2lint.Message{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := msg.Validate(); err != nil {
		return mf2lint.Message{}, fmt.Errorf("%s: %w", path, err)
	}
	return msg, nil
}
