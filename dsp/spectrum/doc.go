// Package spectrum measures where the energy of a signal sits in frequency.
//
// It answers the two questions a pitch shifter's output raises: which
// frequency dominates ([PeakFrequency], [Analyzer]) and how much of a known
// tone is left ([ToneMeter], [ToneAmplitude]).
package spectrum
