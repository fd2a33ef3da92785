package engine

import (
	"fmt"
	"io"

	"gambit/board"
	"gambit/game"
	"gambit/searcher"
	"gambit/stats"
)

// MaxPlies caps a self-play game. A game still running at the cap is
// recorded without a result.
const MaxPlies = 300

// GameRecord summarizes one finished self-play game.
type GameRecord struct {
	Moves       []string
	Result      game.Result
	Plies       int
	BookMoves   int
	SearchMoves int
}

type GameOption func(sp *SelfPlay)

// WithOutput directs the move-by-move transcript. The default discards it.
func WithOutput(w io.Writer) GameOption {
	return func(sp *SelfPlay) {
		if w != nil {
			sp.out = w
		}
	}
}

func WithMaxPlies(plies int) GameOption {
	return func(sp *SelfPlay) {
		if plies > 0 {
			sp.maxPlies = plies
		}
	}
}

func WithSelector(selector *MoveSelector) GameOption {
	return func(sp *SelfPlay) {
		if selector != nil {
			sp.selector = selector
		}
	}
}

// WithCollector reads per-search metrics off the given collector after each
// searched move. Pass the same collector the searcher reports to.
func WithCollector(collector searcher.MetricsCollector) GameOption {
	return func(sp *SelfPlay) {
		if collector != nil {
			sp.collector = collector
		}
	}
}

// SelfPlay plays the engine against itself from the starting position and
// accumulates statistics across games.
type SelfPlay struct {
	selector  *MoveSelector
	collector searcher.MetricsCollector
	out       io.Writer
	maxPlies  int

	plies    stats.Statistic
	rollouts stats.Statistic
	searchMS stats.Statistic
	results  map[game.Result]int
}

func NewSelfPlay(options ...GameOption) *SelfPlay {
	sp := &SelfPlay{
		out:      io.Discard,
		maxPlies: MaxPlies,
		results:  make(map[game.Result]int),
	}
	for _, option := range options {
		option(sp)
	}
	if sp.selector == nil {
		collector := searcher.NewMetricsCollector()
		sp.collector = collector
		sp.selector = NewMoveSelector(WithSearcher(searcher.NewMCTS(
			searcher.WithIterations(DefaultIterations),
			searcher.WithMetrics(collector),
		)))
	}
	return sp
}

// Run plays one game from the starting position and returns its record.
func (sp *SelfPlay) Run() (GameRecord, error) {
	pos := board.NewGame()
	record := GameRecord{}
	moveNumber := 1

	for pos.Result() == game.NoResult && record.Plies < sp.maxPlies {
		fmt.Fprintf(sp.out, "Move number: %d\n", moveNumber)
		fmt.Fprintf(sp.out, "%s\n", pos.Draw())

		move, source, err := sp.selector.SelectMove(pos)
		if err != nil {
			return record, fmt.Errorf("move %d: %w", moveNumber, err)
		}
		switch source {
		case SourceBook:
			record.BookMoves++
		case SourceSearch:
			record.SearchMoves++
			if sp.collector != nil {
				mm := sp.collector.Complete()
				sp.rollouts.Push(float64(mm.RolloutMoves))
				sp.searchMS.Push(float64(mm.Duration.Milliseconds()))
			}
		}

		pos = pos.Apply(move).(*board.Position)
		record.Moves = append(record.Moves, move.String())
		record.Plies++

		fmt.Fprintf(sp.out, "Move made: %s\n\n", move)
		fmt.Fprintln(sp.out, "------")
		moveNumber++
	}

	fmt.Fprintf(sp.out, "%s\n", pos.Draw())

	record.Result = pos.Result()
	sp.plies.Push(float64(record.Plies))
	sp.results[record.Result]++
	return record, nil
}

// Summary writes aggregate statistics over every game played so far.
func (sp *SelfPlay) Summary(w io.Writer) {
	fmt.Fprintf(w, "games: %d\n", sp.plies.Iterations())
	fmt.Fprintf(w, "results: %d white, %d black, %d drawn, %d unfinished\n",
		sp.results[game.WhiteWin], sp.results[game.BlackWin],
		sp.results[game.Draw], sp.results[game.NoResult])
	fmt.Fprintf(w, "plies per game: mean %.1f stdev %.1f min %.0f max %.0f\n",
		sp.plies.Mean(), sp.plies.Stdev(), sp.plies.Min(), sp.plies.Max())
	if sp.rollouts.Iterations() > 0 {
		fmt.Fprintf(w, "rollout moves per search: mean %.1f stdev %.1f\n",
			sp.rollouts.Mean(), sp.rollouts.Stdev())
		fmt.Fprintf(w, "search time: mean %.0fms max %.0fms\n",
			sp.searchMS.Mean(), sp.searchMS.Max())
	}
}
