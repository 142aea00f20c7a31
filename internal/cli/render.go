package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/youruser/outfitapp/internal/storage"
	"github.com/youruser/outfitapp/internal/util"
	"go.uber.org/zap"
)

var renderOpts struct {
	uid     string
	region  string
	out     string
	publish bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one outfit card to a file or object storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderOpts.uid == "" || renderOpts.region == "" {
			return errors.New("--uid and --region are required")
		}
		if renderOpts.out == "" && !renderOpts.publish {
			return errors.New("nothing to do: set --out and/or --publish")
		}

		a, err := newApp(configDir)
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		ctx := cmd.Context()
		png, err := a.pipeline.Render(ctx, renderOpts.uid, renderOpts.region)
		if err != nil {
			return err
		}

		if renderOpts.out != "" {
			if err := util.WriteFile(renderOpts.out, png); err != nil {
				return fmt.Errorf("write %s: %w", renderOpts.out, err)
			}
			a.logger.Info("Card written", zap.String("path", renderOpts.out), zap.Int("bytes", len(png)))
		}

		if renderOpts.publish {
			client, err := storage.NewClient(a.cfg.Storage)
			if err != nil {
				return err
			}
			key, err := storage.NewPublisher(client, a.cfg.Storage).Publish(ctx, renderOpts.region, renderOpts.uid, png)
			if err != nil {
				return err
			}
			a.logger.Info("Card published", zap.String("bucket", a.cfg.Storage.Bucket), zap.String("key", key))
		}
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.uid, "uid", "", "player id")
	f.StringVar(&renderOpts.region, "region", "", "player region")
	f.StringVarP(&renderOpts.out, "out", "o", "", "write the PNG to this path")
	f.BoolVar(&renderOpts.publish, "publish", false, "upload the PNG to object storage")
	RootCmd.AddCommand(renderCmd)
}
