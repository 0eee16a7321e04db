// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/ajmp3"
	"github.com/ik5/ajmp3/formats/mp3"
)

var probeCmd = &cobra.Command{
	Use:   "probe <input.mp3>",
	Short: "Print the frame headers of an MP3 file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().Bool("frames", false, "print every frame header")
	mustBindPFlag("probe.frames", probeCmd.Flags().Lookup("frames"))
}

func runProbe(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var each func(int, mp3.FrameHeader)
	if viper.GetBool("probe.frames") {
		each = func(i int, h mp3.FrameHeader) {
			fmt.Fprintf(out, "%6d  %5d Hz  %3d kbit/s  %d ch  %4d bytes  %d samples\n",
				i, h.SampleRate, h.Bitrate/1000, h.NumChannels, h.FrameSize, h.SamplesPerChannel)
		}
	}

	info, err := ajmp3.Probe(data, each)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	mode := "CBR"
	if info.VBR() {
		mode = "VBR"
	}

	fmt.Fprintf(out, "frames:      %d\n", info.Frames)
	fmt.Fprintf(out, "sample rate: %d Hz\n", info.SampleRate)
	fmt.Fprintf(out, "channels:    %d\n", info.NumChannels)
	fmt.Fprintf(out, "bitrate:     %d-%d kbit/s (%s)\n", info.MinBitrate/1000, info.MaxBitrate/1000, mode)
	fmt.Fprintf(out, "samples:     %d\n", info.Samples)
	fmt.Fprintf(out, "duration:    %s\n", info.Duration)
	if info.Trailing > 0 {
		fmt.Fprintf(out, "trailing:    %d bytes\n", info.Trailing)
	}

	return nil
}
