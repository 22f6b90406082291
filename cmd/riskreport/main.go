// Command riskreport scores a saved questionnaire and writes the PDF report
// without running the HTTP service.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"riskprofile/internal/asset"
	"riskprofile/internal/model"
	"riskprofile/internal/render"
	"riskprofile/internal/service"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "riskreport",
		Short:         "Score risk questionnaires and render client reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline steps to stderr")

	logger := func() *zap.Logger {
		if !verbose {
			return zap.NewNop()
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}

	root.AddCommand(
		newQuestionsCmd(),
		newScoreCmd(logger),
		newGenerateCmd(logger),
	)
	return root
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print both questionnaires as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewAssessmentService(nil)
			return writeYAML(cmd.OutOrStdout(), svc.Questionnaire())
		},
	}
}

func newScoreCmd(logger func() *zap.Logger) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an answers file and print both results and their reconciliation",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(file)
			if err != nil {
				return err
			}
			svc := service.NewAssessmentService(logger())
			a, err := svc.Assess(cmd.Context(), sess)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), a)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "answers file (YAML or JSON)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func newGenerateCmd(logger func() *zap.Logger) *cobra.Command {
	var (
		file      string
		assetsDir string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the PDF report for an answers file",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(file)
			if err != nil {
				return err
			}

			l := logger()
			renderer := render.New(asset.NewDirResolver(assetsDir), render.WithLogger(l))
			svc := service.NewReportService(service.NewAssessmentService(l), renderer, l)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			f, err := svc.Generate(ctx, sess)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = f.Name
			}
			if err := os.WriteFile(outPath, f.Data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(f.Data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "answers file (YAML or JSON)")
	cmd.Flags().StringVar(&assetsDir, "assets", "assets", "directory holding the chart image")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default "+render.FileName+")")
	cmd.MarkFlagRequired("file")
	return cmd
}

// loadSession reads an answers file. JSON is a subset of YAML, so both
// formats decode the same way.
func loadSession(path string) (*model.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return &sess, nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
