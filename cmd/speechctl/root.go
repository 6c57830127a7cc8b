package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/lingua_voice/internal/grader"
	"github.com/Vovarama1992/lingua_voice/internal/similarity"
	"github.com/Vovarama1992/lingua_voice/internal/speech"
)

type speechAPI interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
	Listen(ctx context.Context, path string) speech.Recognition
}

func newRootCmd(load func() (speechAPI, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "speechctl",
		Short:         "Speak, listen and grade sentences from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newTTSCmd(load), newListenCmd(load), newGradeCmd())
	return root
}

func newTTSCmd(load func() (speechAPI, error)) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "tts <text>",
		Short: "Synthesize text and print the MP3 as base64",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}

			audio, err := svc.Synthesize(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if out != "" {
				return os.WriteFile(out, audio, 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), speech.EncodeBase64(audio))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write raw MP3 to this file instead of printing base64")
	return cmd
}

// listen exits 0 for every recognition outcome; the message says what
// happened.
func newListenCmd(load func() (speechAPI, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "listen <audio-file>",
		Short: "Transcribe an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), svc.Listen(cmd.Context(), args[0]).Message())
			return nil
		},
	}
}

func newGradeCmd() *cobra.Command {
	var (
		threshold float64
		diff      bool
	)
	cmd := &cobra.Command{
		Use:   "grade <reference> <candidate>",
		Short: "Score a candidate sentence against the reference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grader.New(threshold)
			if err != nil {
				return err
			}

			res := g.Grade(args[0], args[1])
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %.2f%% (score %.2f)\n", res.Label(), res.Percent(), res.DisplayScore())

			if diff {
				cand, ref := similarity.Normalize(args[1]), similarity.Normalize(args[0])
				for _, op := range similarity.Opcodes(cand, ref) {
					if op.Tag == "equal" {
						continue
					}
					fmt.Fprintf(w, "  %-7s %q -> %q\n", op.Tag, op.A, op.B)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", grader.DefaultThreshold, "verdict threshold in [0,1]")
	cmd.Flags().BoolVar(&diff, "diff", false, "print the edit operations")
	return cmd
}
