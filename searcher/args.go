package searcher

// Defaults for Monte Carlo search

// Rolls a rollout may make before the turn is banked as it stands
const DEFAULT_CUTOFF = 20

// Turn score the baseline roll-again policy stops at during rollouts
const DEFAULT_BASELINE_TARGET = 300
