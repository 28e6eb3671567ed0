package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/strata/internal/config"
	"github.com/ib-77/strata/pkg/rop/chain"
	"github.com/ib-77/strata/pkg/rop/result"
	"github.com/ib-77/strata/pkg/thread"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [values...]",
		Short: "Parse the values as integers on a worker pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := thread.NewPool[int](config.GetLines())
			handles := make([]*thread.JoinHandle[int], 0, len(args))

			for _, arg := range args {
				handles = append(handles, pool.Submit(func(ctx context.Context) (int, error) {
					return chain.ThenTry(chain.FromValue(ctx, arg), atoi).Value()
				}, thread.WithName(arg)))
			}

			zap.S().Debugw("parsing", "values", len(args), "lines", config.GetLines())
			if err := pool.Run(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, h := range handles {
				r := h.Join()
				if r.IsErr() {
					failed++
				}
				fmt.Fprintf(out, "%s: %s\n", h.Name(), result.MapErr(r, errorText))
			}
			fmt.Fprintf(out, "parsed %d, failed %d\n", len(handles)-failed, failed)

			if failed > 0 {
				return fmt.Errorf("%d of %d values failed to parse", failed, len(handles))
			}
			return nil
		},
	}

	cmd.Flags().Int(config.Lines, 0, "worker lines (default: available parallelism)")

	return cmd
}

func atoi(_ context.Context, s string) (int, error) {
	return strconv.Atoi(s)
}

func errorText(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err.Error()
	}
	return err.Error()
}
