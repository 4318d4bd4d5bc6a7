package cli

import (
	diffstegImage "diffsteg/pkg/image"
	"image"
	"os"
	"path/filepath"
)

func getImageFromFilePath(filePath string) (*image.NRGBA, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return diffstegImage.DecodeImage(f)
}

func writeEncodedImage(outputPath string, iEncoder *diffstegImage.Encoder) (err error) {
	outputFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
	}()

	return iEncoder.WriteEncodedImage(outputFile)
}

func readMessage(message, messageFile string) (string, error) {
	if messageFile == "" {
		return message, nil
	}
	content, err := os.ReadFile(messageFile)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// outputFormatFromPath falls back to the extension of the output file when no format was requested
func outputFormatFromPath(format, outputPath string) string {
	if format != "" {
		return format
	}
	return filepath.Ext(outputPath)
}
