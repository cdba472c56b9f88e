// Command rosu-go is the CLI front-end for the difficulty/performance
// library: point it at a single .osu file or a directory of them, apply
// mods, and get back a star/pp report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"
	"github.com/karrick/godirwalk"
	"github.com/olekukonko/tablewriter"
	"github.com/thehowl/go-osuapi"

	rosu "github.com/wieku/rosu-go"
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
	"github.com/wieku/rosu-go/internal/osufile"
)

func main() {
	var (
		dir      = flag.String("dir", "", "scan a directory of .osu files instead of a single map")
		file     = flag.String("file", "", "path to a single .osu file")
		fetchID  = flag.Int("fetch", 0, "fetch a beatmap's .osu file from the osu! API by beatmap id (requires OSU_API_KEY)")
		watch    = flag.Bool("watch", false, "after the initial report, keep re-running on file changes under -dir")
		modsFlag = flag.String("mods", "", "mod abbreviations, e.g. HDDT")
		accuracy = flag.Float64("acc", 100, "accuracy percentage for the pp calculation")
		combo    = flag.Int("combo", -1, "max combo achieved (-1 = full combo)")
		misses   = flag.Int("misses", 0, "miss count")
		score    = flag.Int("score", 1000000, "score for mania pp calculation")
	)

	flag.Parse()

	play := playConfig{
		mods:     parseMods(*modsFlag),
		accuracy: *accuracy,
		combo:    *combo,
		misses:   *misses,
		score:    *score,
	}

	switch {
	case *fetchID > 0:
		if err := fetchBeatmap(*fetchID); err != nil {
			log.Fatalf("fetch: %v", err)
		}

		return
	case *file != "":
		if err := reportOne(*file, play); err != nil {
			log.Fatalf("report: %v", err)
		}
	case *dir != "":
		if err := reportDir(*dir, play); err != nil {
			log.Fatalf("report: %v", err)
		}

		if *watch {
			if err := watchDir(*dir, play); err != nil {
				log.Fatalf("watch: %v", err)
			}
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// playConfig is the player-result side of a pp calculation, shared by
// every map the CLI reports on.
type playConfig struct {
	mods     difficulty.Modifier
	accuracy float64
	combo    int
	misses   int
	score    int
}

func parseMods(s string) difficulty.Modifier {
	s = strings.ToUpper(s)

	table := map[string]difficulty.Modifier{
		"NF": difficulty.NoFail, "EZ": difficulty.Easy, "TD": difficulty.TouchDevice,
		"HD": difficulty.Hidden, "HR": difficulty.HardRock, "SD": difficulty.SuddenDeath,
		"DT": difficulty.DoubleTime, "RX": difficulty.Relax, "HT": difficulty.HalfTime,
		"NC": difficulty.Nightcore, "FL": difficulty.Flashlight, "AP": difficulty.Relax2,
		"SO": difficulty.SpunOut, "V2": difficulty.ScoreV2,
	}

	var mods difficulty.Modifier

	for i := 0; i+1 < len(s); i += 2 {
		if m, ok := table[s[i:i+2]]; ok {
			mods |= m
		}
	}

	return mods
}

type reportRow struct {
	Name  string
	Mods  string
	Stars float64
	PP    float64
}

func calculateReport(path string, play playConfig) (reportRow, error) {
	b, err := osufile.Parse(path)
	if err != nil {
		return reportRow{}, err
	}

	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)
	d.SetMods(play.mods)

	star := rosu.Stars(b, d, 0)

	pp := 0.0

	switch b.Mode {
	case beatmap.ModeFruits:
		builder := rosu.NewCatchPP(b).Mods(play.mods).Misses(play.misses).Accuracy(play.accuracy).Attributes(star)
		if play.combo >= 0 {
			builder.Combo(play.combo)
		}

		pp = builder.Calculate().PP
	case beatmap.ModeTaiko:
		builder := rosu.NewTaikoPP(b).Mods(play.mods).Misses(play.misses).Accuracy(play.accuracy).Attributes(star)
		if play.combo >= 0 {
			builder.Combo(play.combo)
		}

		pp = builder.Calculate().PP
	case beatmap.ModeMania:
		pp = rosu.NewManiaPP(b).Mods(play.mods).Score(float64(play.score)).Attributes(star).Calculate().PP
	default:
		builder := rosu.NewOsuPP(b).Mods(play.mods).Misses(play.misses).Accuracy(play.accuracy).Attributes(star)
		if play.combo >= 0 {
			builder.Combo(play.combo)
		}

		pp = builder.Calculate().PP
	}

	return reportRow{
		Name:  filepath.Base(path),
		Mods:  play.mods.String(),
		Stars: star.Stars(),
		PP:    pp,
	}, nil
}

func printReport(rows []reportRow) {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Map", "Mods", "Stars", "PP"})

	for _, r := range rows {
		table.Append([]string{
			r.Name,
			r.Mods,
			fmt.Sprintf("%.2f", r.Stars),
			humanize.CommafWithDigits(r.PP, 2),
		})
	}

	table.Render()
	fmt.Println(tableString.String())
}

func reportOne(path string, play playConfig) error {
	row, err := calculateReport(path, play)
	if err != nil {
		return err
	}

	printReport([]reportRow{row})

	return nil
}

func reportDir(dir string, play playConfig) error {
	var paths []string

	err := godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if !de.IsDir() && strings.HasSuffix(strings.ToLower(osPathname), ".osu") {
				paths = append(paths, osPathname)
			}

			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return err
	}

	rows := make([]reportRow, 0, len(paths))

	for _, p := range paths {
		row, err := calculateReport(p, play)
		if err != nil {
			log.Printf("skip %s: %v", p, err)
			continue
		}

		rows = append(rows, row)
	}

	printReport(rows)

	return nil
}

// watchDir re-runs reportDir whenever a .osu file under dir changes,
// debounced so editors that write in bursts trigger one rerun.
func watchDir(dir string, play playConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	debounce := time.NewTimer(0)
	<-debounce.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !strings.HasSuffix(strings.ToLower(event.Name), ".osu") {
				continue
			}

			debounce.Reset(300 * time.Millisecond)
		case <-debounce.C:
			if err := reportDir(dir, play); err != nil {
				log.Printf("watch rerun: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Printf("watch error: %v", err)
		}
	}
}

// fetchBeatmap looks up a beatmap's metadata through the osu! API using
// the key in OSU_API_KEY. The API does not serve raw .osu files, so this
// prints the map's metadata (for the caller to locate the file
// themselves) rather than feeding the result straight into the
// calculator.
func fetchBeatmap(id int) error {
	key := os.Getenv("OSU_API_KEY")
	if key == "" {
		return fmt.Errorf("OSU_API_KEY is not set")
	}

	client := osuapi.NewClient(key)

	beatmaps, err := client.GetBeatmaps(osuapi.GetBeatmapsOpts{BeatmapID: id})
	if err != nil {
		return err
	}

	if len(beatmaps) == 0 {
		return fmt.Errorf("beatmap %d not found", id)
	}

	bm := beatmaps[0]

	fmt.Printf("%s - %s [%s] (id %s)\n", bm.Artist, bm.Title, bm.DiffName, strconv.Itoa(id))

	return nil
}
