// Command plumchess analyzes chess positions given as FEN strings: check
// status, material score and a shallow best line, optionally cached in a
// local database and rendered to SVG.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jwkunz/plum-chess-sub001/internal/board"
	"github.com/jwkunz/plum-chess-sub001/internal/diagram"
	"github.com/jwkunz/plum-chess-sub001/internal/game"
	"github.com/jwkunz/plum-chess-sub001/internal/search"
	"github.com/jwkunz/plum-chess-sub001/internal/storage"
)

var (
	fenFlag     = flag.String("fen", "", "position to analyze (defaults to the starting position)")
	fileFlag    = flag.String("file", "", "file with one FEN per line")
	depthFlag   = flag.Int("depth", 4, "search depth in plies")
	svgFlag     = flag.String("svg", "", "write the (single) position as SVG to this path")
	dbFlag      = flag.String("db", "", "analysis cache directory (overrides -cache)")
	cacheFlag   = flag.Bool("cache", false, "cache reports in the default data directory")
	workersFlag = flag.Int("concurrency", runtime.NumCPU(), "concurrent positions")
)

func main() {
	flag.Parse()

	fens, err := collectFENs()
	if err != nil {
		log.Fatal(err)
	}

	dbDir := *dbFlag
	if dbDir == "" && *cacheFlag {
		dbDir, err = storage.DatabaseDir()
		if err != nil {
			log.Fatal("resolve cache directory: ", err)
		}
	}

	var store *storage.Store
	if dbDir != "" {
		store, err = storage.Open(dbDir)
		if err != nil {
			log.Fatal("open analysis cache: ", err)
		}
		defer store.Close()
	}

	if err := run(context.Background(), fens, store); err != nil {
		log.Fatal(err)
	}

	if *svgFlag != "" {
		if len(fens) != 1 {
			log.Fatal("-svg needs exactly one position")
		}
		pos, err := game.ParseFEN(fens[0])
		if err != nil {
			log.Fatal(err)
		}
		if err := writeSVG(*svgFlag, pos); err != nil {
			log.Fatal("write svg: ", err)
		}
	}
}

func collectFENs() ([]string, error) {
	var fens []string
	if *fenFlag != "" {
		fens = append(fens, *fenFlag)
	}
	if *fileFlag != "" {
		f, err := os.Open(*fileFlag)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				fens = append(fens, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	fens = append(fens, flag.Args()...)
	if len(fens) == 0 {
		fens = []string{game.StartingPositionFEN}
	}
	return fens, nil
}

// run fans the positions out over a fixed worker pool. Every worker parses
// its own position, so no register is ever shared between goroutines.
func run(ctx context.Context, fens []string, store *storage.Store) error {
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan string)
	reports := make(chan *storage.Report)

	g.Go(func() error {
		defer close(jobs)
		for _, fen := range fens {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- fen:
			}
		}
		return nil
	})

	workers := *workersFlag
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for fen := range jobs {
				report, err := analyze(fen, store)
				if err != nil {
					return fmt.Errorf("analyze %q: %w", fen, err)
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				case reports <- report:
				}
			}
			return nil
		})
	}
	go func() {
		g.Wait()
		close(reports)
	}()

	for report := range reports {
		printReport(report)
	}
	return g.Wait()
}

func analyze(fen string, store *storage.Store) (*storage.Report, error) {
	if store != nil {
		if cached, ok, err := store.LoadReport(fen); err != nil {
			return nil, err
		} else if ok && cached.Depth >= *depthFlag {
			return cached, nil
		}
	}

	pos, err := game.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report := &storage.Report{FEN: fen, Depth: *depthFlag}

	inCheck, err := pos.InCheck()
	if err != nil {
		return nil, err
	}
	report.InCheck = inCheck
	if inCheck {
		chk, err := board.ClassifyCheck(pos.Turn, pos.Register, board.NoSquare)
		if err != nil {
			return nil, err
		}
		report.CheckKind = chk.Kind.String()
	}

	res, err := search.BestMove(pos, *depthFlag)
	switch {
	case errors.Is(err, search.ErrNoMoves):
		if inCheck {
			report.CheckKind = board.Checkmate.String()
		} else {
			report.CheckKind = "stalemate"
		}
	case err != nil:
		return nil, err
	default:
		described, err := pos.Describe(res.Best)
		if err != nil {
			return nil, err
		}
		report.BestMove = described.String()
		report.Score = float64(res.Score)
	}
	report.Elapsed = time.Since(start)

	if store != nil {
		if err := store.SaveReport(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func writeSVG(path string, pos *game.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	diagram.Render(f, pos)
	return nil
}

func printReport(r *storage.Report) {
	fmt.Printf("position  %s\n", r.FEN)
	if r.CheckKind != "" {
		fmt.Printf("status    %s\n", r.CheckKind)
	} else if r.InCheck {
		fmt.Printf("status    check\n")
	}
	if r.BestMove != "" {
		fmt.Printf("best      %s (score %+.1f, depth %d)\n", r.BestMove, r.Score, r.Depth)
	}
	fmt.Printf("elapsed   %s\n\n", r.Elapsed.Round(time.Millisecond))
}
