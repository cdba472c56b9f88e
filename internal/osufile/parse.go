// Package osufile is a minimal .osu text-format reader good enough to
// drive the CLI. Full beatmap file parsing is outside the core library's
// scope; this package exists only so the cmd/rosu-go tool has something
// to hand the library, and intentionally does not attempt to handle every
// .osu format quirk (storyboard events, old-format timing edge cases, and
// so on).
package osufile

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/framework/math/vector"
)

// Parse reads path as an .osu file and returns the populated Beatmap.
func Parse(path string) (*beatmap.Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := &beatmap.Beatmap{AR: 5, CS: 5, OD: 5, HP: 5}

	beatLength := 500.0
	sliderMultiplier := 1.4
	tickRate := 1.0

	section := ""

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line
			continue
		}

		switch section {
		case "[General]":
			if k, v, ok := splitColon(line); ok && k == "Mode" {
				switch v {
				case "1":
					b.Mode = beatmap.ModeTaiko
				case "2":
					b.Mode = beatmap.ModeFruits
				case "3":
					b.Mode = beatmap.ModeMania
				default:
					b.Mode = beatmap.ModeOsu
				}
			}
		case "[Difficulty]":
			if k, v, ok := splitColon(line); ok {
				value, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)

				switch k {
				case "HPDrainRate":
					b.HP = value
				case "CircleSize":
					b.CS = value
				case "OverallDifficulty":
					b.OD = value
				case "ApproachRate":
					b.AR = value
				case "SliderMultiplier":
					sliderMultiplier = value
				case "SliderTickRate":
					tickRate = value
				}
			}
		case "[TimingPoints]":
			fields := strings.Split(line, ",")
			if len(fields) >= 2 {
				if ms, err := strconv.ParseFloat(fields[1], 64); err == nil && ms > 0 {
					beatLength = ms
				}
			}
		case "[HitObjects]":
			if obj, ok := parseHitObject(line, b.Mode); ok {
				b.HitObjects = append(b.HitObjects, obj)

				switch obj.Kind {
				case beatmap.Circle:
					b.NCircles++
				case beatmap.Slider:
					b.NSliders++
				case beatmap.Spinner:
					b.NSpinners++
				case beatmap.Hold:
					b.NHolds++
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	b.Slider = beatmap.NewDefaultSliderState(beatLength, sliderMultiplier, tickRate)

	return b, nil
}

func splitColon(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

func parseHitObject(line string, mode beatmap.Mode) (beatmap.HitObject, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return beatmap.HitObject{}, false
	}

	x, _ := strconv.ParseFloat(fields[0], 64)
	y, _ := strconv.ParseFloat(fields[1], 64)
	startTime, _ := strconv.ParseFloat(fields[2], 64)
	typeBits, _ := strconv.Atoi(fields[3])

	hitsound := 0
	if len(fields) >= 5 {
		hitsound, _ = strconv.Atoi(fields[4])
	}

	obj := beatmap.HitObject{
		Pos:       vector.NewVec2f(float32(x), float32(y)),
		StartTime: startTime,
		NewCombo:  typeBits&4 != 0,
		Hitsound:  hitsound,
	}

	switch {
	case typeBits&1 != 0:
		obj.Kind = beatmap.Circle
		obj.EndTime = startTime
	case typeBits&2 != 0:
		obj.Kind = beatmap.Slider
		obj.Repeats = 1

		if len(fields) >= 7 {
			if repeats, err := strconv.Atoi(fields[6]); err == nil && repeats > 0 {
				obj.Repeats = repeats
			}
		}

		if len(fields) >= 8 {
			if pixelLen, err := strconv.ParseFloat(fields[7], 64); err == nil {
				obj.PixelLen = pixelLen
			}
		}
	case typeBits&8 != 0:
		obj.Kind = beatmap.Spinner
		if len(fields) >= 6 {
			endTime, _ := strconv.ParseFloat(fields[5], 64)
			obj.EndTime = endTime
		}
	case typeBits&128 != 0:
		obj.Kind = beatmap.Hold
		if len(fields) >= 6 {
			endSpec := fields[5]
			if idx := strings.Index(endSpec, ":"); idx >= 0 {
				endSpec = endSpec[:idx]
			}

			endTime, _ := strconv.ParseFloat(endSpec, 64)
			obj.EndTime = endTime
		}
	default:
		return beatmap.HitObject{}, false
	}

	return obj, true
}
