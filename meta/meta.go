// meta/meta.go
package meta

import "time"

// TRAINING_INSTANCES defines the number of evolution tasks run per generation.
const TRAINING_INSTANCES = 10

// ITERATIONS_PER_INSTANCE defines how many bracket rounds each task runs.
const ITERATIONS_PER_INSTANCE = 10

// BRACKET_SIZE defines the number of players in a round-robin bracket.
const BRACKET_SIZE = 15

// MUTATION_RATE defines the per-weight mutation chance in parts per thousand.
const MUTATION_RATE = 10

// MAX_PLIES caps the length of a game; a game reaching it is a draw.
const MAX_PLIES = 100

// REPORT_INTERVAL defines how often live training statistics are published.
const REPORT_INTERVAL = 500 * time.Millisecond
