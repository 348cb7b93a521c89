// Package harness replays scripted drill sessions and checks the result.
//
// # Scenario Format
//
// Scenarios are YAML files. Choices pins every random draw in order (the
// per-round kind draw first when more than one kind is configured, then
// the generator's draws); responses are what the solver types:
//
//	name: fret_low_e_to_g
//	description: "Fret quiz on the low E string"
//	tuning: EADGBE
//	kinds: [frets]
//	rounds: 1
//	choices: [0, 7]
//	responses: ["peek", "4", "3"]
//	assertions:
//	  - type: question_equals
//	    round: 1
//	    text: "With EADGBE tuning, which fret is G on E?"
//	  - type: verdicts
//	    round: 1
//	    verdicts: [false, true]
//	  - type: outcome
//	    outcome: completed
//
// # Assertion Types
//
//   - question_equals: the question of a round matches text exactly
//   - question_contains: the question of a round contains text
//   - verdicts: the verdict sequence of a round
//   - hint_count: number of peeks across the session
//   - rounds: number of solved rounds
//   - outcome: completed, io_failure or construction_error
//
// # Deterministic Testing
//
// Every scenario runs with a fixed chooser, a deterministic logical clock
// and a fixed session token, so the transcript is byte-identical across
// runs and can be compared against a golden file.
package harness
