// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ik5/ajmp3"
	"github.com/ik5/ajmp3/ajm"
	"github.com/ik5/ajmp3/audio"
	"github.com/ik5/ajmp3/formats/mp3"
	"github.com/ik5/ajmp3/formats/wav"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <input.mp3> <output>",
	Short: "Decode an MP3 file into a WAV or raw PCM file",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().Int("in-chunk", ajmp3.DefaultInChunk, "input window size in bytes")
	decodeCmd.Flags().Int("out-chunk", ajmp3.DefaultOutChunk, "output window size in bytes")
	decodeCmd.Flags().String("engine", "mp3", "decode engine backend")
	decodeCmd.Flags().Bool("raw", false, "write headerless interleaved 16-bit PCM instead of WAV")

	mustBindPFlag("decode.in_chunk", decodeCmd.Flags().Lookup("in-chunk"))
	mustBindPFlag("decode.out_chunk", decodeCmd.Flags().Lookup("out-chunk"))
	mustBindPFlag("decode.engine", decodeCmd.Flags().Lookup("engine"))
	mustBindPFlag("decode.raw", decodeCmd.Flags().Lookup("raw"))
}

func engines() *audio.Registry {
	reg := audio.NewRegistry()
	mp3.Register(reg)
	return reg
}

func runDecode(cmd *cobra.Command, args []string) (err error) {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	inPath, outPath := args[0], args[1]

	reg := engines()
	name := viper.GetString("decode.engine")
	factory, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q (have %v)", audio.ErrUnknownEngine, name, reg.Names())
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	job := &ajm.JobOutput{MFrame: &ajm.MFrameResult{}}
	p := ajmp3.Pipeline{
		Engine:   factory,
		InChunk:  viper.GetInt("decode.in_chunk"),
		OutChunk: viper.GetInt("decode.out_chunk"),
		Options:  []ajm.Option{ajm.WithLogger(logger)},
		Sink:     job,
	}

	raw := viper.GetBool("decode.raw")
	var w *wav.Writer
	if !raw {
		w = wav.NewWriter(f)
		p.Options = append(p.Options, ajm.WithBlockWriter(w))
	}

	pcm, stats, err := p.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	if raw {
		if _, err := f.Write(pcm); err != nil {
			return err
		}
	} else if err := w.Close(); err != nil {
		return err
	}

	logger.Info("decoded",
		zap.String("input", inPath),
		zap.String("output", outPath),
		zap.Uint64("frames", stats.NumFrames),
		zap.Uint64("samples", stats.DecodedSamples))

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames, %d samples per channel, %d PCM bytes\n",
		outPath, job.MFrame.NumFrames, stats.DecodedSamples, len(pcm))

	return nil
}
