package cli

import (
	"diffsteg/internal/logging"
	"diffsteg/pkg/config"
	diffstegImage "diffsteg/pkg/image"
	"diffsteg/pkg/steg"
	"fmt"
	"image/png"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

func ImageCommands() *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Hides text in images and recovers it by diffing against the original",
		Example: "diffsteg image encode --image source.png --output-file output.png --message \"meet at noon\"",
	}

	imageCmd.AddCommand(encodeImageCommand(), decodeImageCommand(), imageInfoCommand(), compareImagesCommand())
	return imageCmd
}

type encodeImageOpts struct {
	sourceImage    string
	outputImage    string
	message        string
	messageFile    string
	outputFormat   string
	pngCompression string
	failOnOverflow bool
}

func (o encodeImageOpts) toEncodeConfig() (config.ImageEncodeConfig, error) {
	mappedCompression, found := pngCompressionMapping[o.pngCompression]
	if !found {
		return config.ImageEncodeConfig{}, fmt.Errorf("unknown png compression %q, options are default, none, fast, best", o.pngCompression)
	}

	iConfig := config.ImageEncodeConfig{
		OutputFormat:        outputFormatFromPath(o.outputFormat, o.outputImage),
		PngCompressionLevel: mappedCompression,
	}
	if o.failOnOverflow {
		iConfig.CapacityPolicy = steg.CapacityFailFast
	}
	return iConfig, nil
}

func encodeImageCommand() *cobra.Command {
	opts := encodeImageOpts{}

	encImgCmd := &cobra.Command{
		Use:     "encode",
		Example: "diffsteg image encode --image source.png --output-file output.png --message-file secret.txt",
		Short:   "Hide a message in an image",
		Long: "Hide a message in an image. Every character must be in the Latin-1 range. The output is always written in a " +
			"lossless format, and the source image is needed to decode the message again",
		RunE: func(cmd *cobra.Command, args []string) error {
			iConfig, err := opts.toEncodeConfig()
			if err != nil {
				return err
			}
			message, err := readMessage(opts.message, opts.messageFile)
			if err != nil {
				return err
			}
			return EncodeImageWithMessage(cmd, opts.sourceImage, opts.outputImage, message, iConfig)
		},
	}

	encImgCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the message in, it is not modified")
	encImgCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the encoded image that will be generated")
	encImgCmd.Flags().StringVar(&opts.message, "message", "", "Message to hide")
	encImgCmd.Flags().StringVar(&opts.messageFile, "message-file", "", "File containing the message to hide")
	encImgCmd.Flags().StringVar(&opts.outputFormat, "format", "", "Format of the output image. Options are png, bmp, tiff. Defaults to the extension of the output file, or png")
	encImgCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "default", "Compression for output png. Options are default, none, fast, best")
	encImgCmd.Flags().BoolVar(&opts.failOnOverflow, "fail-on-overflow", true, "Fail if the message does not fit in the image. When false, the message is truncated")

	MarkFlagsRequired(encImgCmd, "image", "output-file")
	encImgCmd.MarkFlagsOneRequired("message", "message-file")
	encImgCmd.MarkFlagsMutuallyExclusive("message", "message-file")

	return encImgCmd
}

func EncodeImageWithMessage(cmd *cobra.Command, imageSourcePath, outputPath, message string, iConfig config.ImageEncodeConfig) error {
	logger := logging.BuildLogger()
	s := NewSpinner()
	s.Prefix = "Reading source image from disk "
	s.Start()
	defer s.Stop()

	srcImage, _, err := getImageFromFilePath(imageSourcePath)
	if err != nil {
		return err
	}

	s.Prefix = "Setting up encoder "
	iEncoder, err := diffstegImage.NewImageEncoder(srcImage, iConfig)
	if err != nil {
		return err
	}

	s.Prefix = "Encoding message "
	if err = iEncoder.EncodeMessage(message); err != nil {
		return err
	}

	s.Prefix = "Writing encoded image "
	if err = writeEncodedImage(outputPath, iEncoder); err != nil {
		return err
	}
	s.Stop()

	stats := iEncoder.Stats()
	logger.Debug("Image encoding was successful",
		"setup", stats.Setup.String(),
		"data_encoding", stats.DataEncoding.String(),
		"output_image_encoding", stats.OutputImageEncoding.String())

	if stats.Truncated() {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %s, message was truncated to %s of %s characters\n",
			outputPath, humanize.Comma(int64(stats.EncodedChars)), humanize.Comma(int64(stats.MessageChars)))
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with a %s character message encoded\n",
		outputPath, humanize.Comma(int64(stats.MessageChars)))
	return err
}

type decodeImageOpts struct {
	originalImage string
	modifiedImage string
	config        config.ImageDecodeConfig
}

func decodeImageCommand() *cobra.Command {
	opts := decodeImageOpts{}

	decodeCommand := &cobra.Command{
		Use:     "decode",
		Example: "diffsteg image decode --original source.png --modified output.png",
		Short:   "Recover a message by comparing an encoded image with its original",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeMessageFromImages(cmd, opts.originalImage, opts.modifiedImage, opts.config)
		},
	}

	decodeCommand.Flags().StringVar(&opts.originalImage, "original", "", "Image the message was hidden in")
	decodeCommand.Flags().StringVar(&opts.modifiedImage, "modified", "", "Image generated by diffsteg image encode")
	decodeCommand.Flags().IntVar(&opts.config.MessageLength, "length", 0, "Number of characters to decode. By default the whole image is decoded")
	decodeCommand.Flags().BoolVar(&opts.config.KeepTrailingNulls, "keep-nulls", false, "Keep the NUL characters that follow the message when decoding the whole image")

	MarkFlagsRequired(decodeCommand, "original", "modified")
	return decodeCommand
}

func DecodeMessageFromImages(cmd *cobra.Command, originalPath, modifiedPath string, dConfig config.ImageDecodeConfig) error {
	logger := logging.BuildLogger()
	s := NewSpinner()
	s.Prefix = "Reading images from disk "
	s.Start()
	defer s.Stop()

	original, _, err := getImageFromFilePath(originalPath)
	if err != nil {
		return err
	}
	modified, _, err := getImageFromFilePath(modifiedPath)
	if err != nil {
		return err
	}

	s.Prefix = "Setting up decoder "
	decoder, err := diffstegImage.NewImageDecoder(original, modified)
	if err != nil {
		return err
	}

	s.Prefix = "Decoding message "
	message, err := decoder.DecodeMessage(dConfig)
	if err != nil {
		return err
	}
	s.Stop()

	stats := decoder.Stats()
	logger.Debug("Image decoding was successful",
		"data_decoding", stats.DataDecoding.String(),
		"decoded_chars", stats.DecodedChars,
		"trimmed_nulls", stats.TrimmedNulls)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
	return err
}

func imageInfoCommand() *cobra.Command {
	var sourceImage string

	infoCommand := &cobra.Command{
		Use:     "info",
		Example: "diffsteg image info --image source.png",
		Short:   "Show how much text an image can carry",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, format, err := getImageFromFilePath(sourceImage)
			if err != nil {
				return err
			}

			capacity := diffstegImage.Capacity(img)
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"Format: %s\nDimensions: %dx%d\nCarrier channels per pixel: %d\nCarrier channels: %s\nCapacity: %s characters (%s)\n",
				format, capacity.Width, capacity.Height, capacity.Channels, humanize.Comma(int64(capacity.CarrierSlots)),
				humanize.Comma(int64(capacity.Characters)), humanize.Bytes(uint64(capacity.Bytes)))
			return err
		},
	}

	infoCommand.Flags().StringVar(&sourceImage, "image", "", "Image to inspect")
	MarkFlagsRequired(infoCommand, "image")
	return infoCommand
}

func compareImagesCommand() *cobra.Command {
	var originalImage, modifiedImage string

	compareCommand := &cobra.Command{
		Use:     "compare",
		Example: "diffsteg image compare --original source.png --modified output.png",
		Short:   "Measure how much an encoded image differs from its original",
		RunE: func(cmd *cobra.Command, args []string) error {
			original, _, err := getImageFromFilePath(originalImage)
			if err != nil {
				return err
			}
			modified, _, err := getImageFromFilePath(modifiedImage)
			if err != nil {
				return err
			}

			comparison, err := diffstegImage.Compare(original, modified)
			if err != nil {
				return err
			}

			psnr := "infinite (images are identical)"
			if !math.IsInf(comparison.PSNR, 0) {
				psnr = fmt.Sprintf("%.2f dB", comparison.PSNR)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "MSE: %.6f\nPSNR: %s\nChanged channels: %s of %s (%.4f%%)\n",
				comparison.MSE, psnr, humanize.Comma(int64(comparison.ChangedChannels)),
				humanize.Comma(int64(comparison.TotalChannels)), comparison.ChangePercentage)
			return err
		},
	}

	compareCommand.Flags().StringVar(&originalImage, "original", "", "Image the message was hidden in")
	compareCommand.Flags().StringVar(&modifiedImage, "modified", "", "Image generated by diffsteg image encode")
	MarkFlagsRequired(compareCommand, "original", "modified")
	return compareCommand
}
