package cli

import (
	"github.com/arthur-debert/roster/pkg/errors"
	"github.com/arthur-debert/roster/pkg/logging"
	"github.com/spf13/cobra"
)

func newExecCmd(sess *session) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:     "exec <command>...",
		Short:   MsgExecShort,
		Long:    MsgExecLong,
		Example: MsgExecExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut, err := sess.renderers(cmd)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cli.exec")
			failed := 0
			for i, text := range args {
				result, err := sess.dispatcher.Dispatch(text)
				if err != nil {
					failed++
					logger.Error().Msgf("Error processing command %q", text)
					if renderErr := errOut.RenderError(err); renderErr != nil {
						return renderErr
					}
					if !keepGoing {
						logger.Debug().Int("skipped", len(args)-i-1).Msg("Stopping at first failure")
						break
					}
					continue
				}

				logger.Debug().Msgf("Command %q processed okay", text)
				if err := out.RenderResult(result); err != nil {
					return err
				}
			}

			if failed > 0 {
				return errors.Newf(errors.ErrCommandFailed, MsgErrExecFailed, failed, len(args)).
					WithDetail("failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, MsgFlagKeepGoing)

	return cmd
}
