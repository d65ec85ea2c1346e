package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// Report formats accepted by --report
const (
	ReportYAML = "yaml"
	ReportJSON = "json"
	ReportNone = "none"
)

var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Convert one image file to PNG, JPEG or WEBP",
	Long: `Convert decodes an image, draws it at its original size and re-encodes
it in the requested format. The result is written to the output directory as
converted-image.<ext>; an existing file is never overwritten, a numbered name
is chosen instead. A report of the conversion is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("format", "f", model.DefaultFormat.String(), "target format: png, jpeg or webp")
	convertCmd.Flags().StringP("output-dir", "o", "", "directory for the converted image (default: ~/Downloads)")
	convertCmd.Flags().Duration("timeout", 0, "give up decoding after this long (0 = no limit)")
	convertCmd.Flags().String("report", ReportYAML, "report format: yaml, json or none")
	convertCmd.Flags().Bool("open", false, "open the converted image with the default viewer")
	convertCmd.Flags().Bool("embed", false, "include the converted image as a data URI in the report")

	_ = viper.BindPFlag(ConfigKeyFormat, convertCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag(ConfigKeyOutputDir, convertCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag(ConfigKeyTimeout, convertCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag(ConfigKeyReport, convertCmd.Flags().Lookup("report"))
	_ = viper.BindPFlag(ConfigKeyOpen, convertCmd.Flags().Lookup("open"))
	_ = viper.BindPFlag(ConfigKeyEmbed, convertCmd.Flags().Lookup("embed"))

	rootCmd.AddCommand(convertCmd)
}

// convertOptions are the resolved settings of one convert run
type convertOptions struct {
	Input     string
	Format    model.Format
	OutputDir string
	Timeout   time.Duration
	Embed     bool
}

// conversionReport describes a finished conversion
type conversionReport struct {
	Source   string `yaml:"source" json:"source"`
	ResultID string `yaml:"result_id" json:"result_id"`
	Format   string `yaml:"format" json:"format"`
	MIMEType string `yaml:"mime_type" json:"mime_type"`
	Width    int    `yaml:"width" json:"width"`
	Height   int    `yaml:"height" json:"height"`
	Bytes    int    `yaml:"bytes" json:"bytes"`
	Output   string `yaml:"output" json:"output"`
	Elapsed  string `yaml:"elapsed" json:"elapsed"`
	DataURI  string `yaml:"data_uri,omitempty" json:"data_uri,omitempty"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, err := model.ParseFormat(viper.GetString(ConfigKeyFormat))
	if err != nil {
		return err
	}

	reportFormat := viper.GetString(ConfigKeyReport)
	switch reportFormat {
	case ReportYAML, ReportJSON, ReportNone:
	default:
		return fmt.Errorf("unsupported report format %q: use yaml, json or none", reportFormat)
	}

	outputDir := viper.GetString(ConfigKeyOutputDir)
	if outputDir == "" {
		outputDir, err = platform.GetHomeDownloadsDir()
		if err != nil {
			return err
		}
	}

	opts := convertOptions{
		Input:     args[0],
		Format:    format,
		OutputDir: outputDir,
		Timeout:   viper.GetDuration(ConfigKeyTimeout),
		Embed:     viper.GetBool(ConfigKeyEmbed),
	}

	report, err := convertFile(cmd.Context(), opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := writeReport(cmd.OutOrStdout(), reportFormat, report); err != nil {
		return err
	}

	if viper.GetBool(ConfigKeyOpen) {
		if err := platform.OpenFileWithDefaultApp(report.Output); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Could not open %s: %v\n", report.Output, err)
		}
	}
	return nil
}

// convertFile runs select, convert and download for one file. Notifications
// are printed to notices.
func convertFile(ctx context.Context, opts convertOptions, notices io.Writer) (conversionReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	notifier := convert.NotifierFunc(func(n model.Notification) {
		fmt.Fprintf(notices, "%s: %s\n", n.Title, n.Description)
	})

	var output string
	saver := platform.NewDirSaver(opts.OutputDir)
	saver.OnSaved = func(path string) { output = path }

	svc := convert.NewService(notifier, saver, convert.WithFormat(opts.Format))

	start := time.Now()
	if err := svc.SelectPath(opts.Input); err != nil {
		return conversionReport{}, err
	}
	if err := svc.Convert(ctx); err != nil {
		return conversionReport{}, err
	}
	if err := svc.Download(ctx); err != nil {
		return conversionReport{}, err
	}

	result, ok := svc.Result()
	if !ok {
		return conversionReport{}, fmt.Errorf("no result for %s", opts.Input)
	}

	report := conversionReport{
		Source:   opts.Input,
		ResultID: result.ID,
		Format:   result.Format.String(),
		MIMEType: result.MIMEType(),
		Width:    result.Width,
		Height:   result.Height,
		Bytes:    len(result.Data),
		Output:   output,
		Elapsed:  time.Since(start).Round(time.Millisecond).String(),
	}
	if opts.Embed {
		report.DataURI = result.DataURI()
	}
	return report, nil
}

// writeReport prints report in the given format
func writeReport(w io.Writer, format string, report conversionReport) error {
	switch format {
	case ReportNone:
		return nil
	case ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case ReportYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

