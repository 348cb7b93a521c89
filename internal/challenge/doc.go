// Package challenge generates fretboard and theory questions and judges
// free-text guesses against the computed answer.
//
// A Challenge is a question string paired with an Answer. Answer is a
// closed set of tagged values (FretAnswer, NoteAnswer, ...); the tag decides
// how a guess is parsed. Issue drives the interaction loop:
//
//	Asked -> awaiting guess -> Revealed (loop) | Incorrect (loop) | Correct (done)
//
// A malformed guess is judged Incorrect. A Renderer failure ends the loop
// with an IoFailure error.
//
// Randomness comes from an injected Chooser so tests can pin the exact
// question and answer.
package challenge
