// Package abstraction wires the Cartesian set (cartesianset), refinement
// hierarchy (refhierarchy) and transition oracle (oracle) packages together
// into one Cartesian abstraction: the single owner of every Cartesian set,
// abstract state, and hierarchy node for the lifetime of one CEGAR run.
//
// Abstraction starts as a single trivial state covering the whole state
// space and grows only through Refine, which installs a new split in the
// hierarchy, derives the two children's Cartesian sets, decides which
// child reuses the parent's dense state ID (keeping the initial concrete
// state's ID stable at 0) and which gets a freshly allocated one, rewires
// the active transition oracle when it carries explicit state (TS mode
// only; MT and SG need no split-time work), and keeps the goal-state set
// in sync with the goal-preservation invariant.
package abstraction
