// Command pulseplot builds a stimulus matrix from a simple (optionally
// shattered) pulse and a noise pulse and plots it, one row per trace.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hammal/stimulus"
	"github.com/hammal/stimulus/pulse"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pulseplot: ")

	rate := flag.Int("rate", 10000, "Sample rate in Hz")
	onset := flag.Float64("onset", 0.1, "Silence before the pulses in seconds")
	offset := flag.Float64("offset", 0.1, "Silence after the pulses in seconds")

	frequency := flag.Float64("freq", 5, "Simple pulse frequency in Hz")
	duty := flag.Float64("duty", 0.5, "Simple pulse duty")
	length := flag.Float64("length", 1, "Pulse length in seconds")
	shatter := flag.Float64("shatter", 0, "Shatter frequency in Hz (0 for a clean pulse)")
	shatterDuty := flag.Float64("shatter-duty", 0.5, "Shatter duty")

	noiseFrequency := flag.Float64("noise-freq", 20, "Noise chip frequency in Hz")
	carrier := flag.Float64("carrier", 500, "Noise carrier frequency in Hz")
	ampMin := flag.Float64("amp-min", 0.1, "Lowest noise duty")
	ampMax := flag.Float64("amp-max", 0.9, "Highest noise duty")
	seed := flag.Uint64("seed", 1, "Noise seed")

	output := flag.String("o", "pulses.png", "Output PNG path")
	wavPath := flag.String("wav", "", "Optional WAV path, one channel per pulse")
	kinds := flag.String("kinds", "Simple,Noise", "Comma separated pulse kinds, one row each")
	flag.Parse()

	simple := pulse.Simple{
		Shape:  pulse.Duty{Frequency: *frequency, Duty: *duty},
		Extent: pulse.Length(*length),
	}
	if *shatter > 0 {
		simple.Shatter = &pulse.Shatter{Frequency: *shatter, Duty: *shatterDuty}
	}
	noise := pulse.Noise{
		Frequency:        *noiseFrequency,
		ShatterFrequency: *carrier,
		AmpMin:           *ampMin,
		AmpMax:           *ampMax,
		Seed:             *seed,
		Extent:           pulse.Length(*length),
	}

	params, err := selectPulses(*kinds, simple, noise)
	if err != nil {
		log.Fatal(err)
	}

	sys := stimulus.System{SampleRate: *rate, Onset: *onset, Offset: *offset}
	matrix, time, err := stimulus.MakePulse(sys, params)
	if err != nil {
		log.Fatal(err)
	}
	rows, cols := matrix.Dims()
	log.Printf("built %d pulses of %d samples at %d Hz", rows, cols, *rate)

	if err := plotMatrix(*output, matrix, time); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *output)

	if *wavPath != "" {
		if err := writeWav(*wavPath, matrix, *rate); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *wavPath)
	}
}

// selectPulses returns one parameter set per kind named in kinds.
func selectPulses(kinds string, simple pulse.Simple, noise pulse.Noise) ([]pulse.Parameters, error) {
	var params []pulse.Parameters
	for _, name := range strings.Split(kinds, ",") {
		kind, err := pulse.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		switch kind {
		case pulse.KindSimple:
			params = append(params, simple)
		case pulse.KindNoise:
			params = append(params, noise)
		}
	}
	return params, nil
}
