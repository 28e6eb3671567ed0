package cli

import (
	"fmt"

	"github.com/ib-77/strata/pkg/collections/queue"
	"github.com/ib-77/strata/pkg/collections/seq"
	"github.com/ib-77/strata/pkg/collections/stack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue [values...]",
		Short: "Enqueue the values and print them in dequeue order",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := queue.New(args...)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, q)
			zap.S().Debugw("queue built", "len", q.Len())

			for v := range seq.All(q.Drain()) {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}

func newStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack [values...]",
		Short: "Push the values and print them in pop order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := stack.New(args...)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, s)
			zap.S().Debugw("stack built", "len", s.Len())

			for v := s.Pop(); v.IsSome(); v = s.Pop() {
				fmt.Fprintln(out, v.Unwrap())
			}
			return nil
		},
	}
}
