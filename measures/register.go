package measures

import "github.com/sappo/libsimilarity/registry"

// init populates the registry with every concrete measure and its
// aliases, mirroring the original's static func[] table (measures.c):
// aliases share the exact same configure/compare pair as their
// canonical name rather than re-registering separate logic.
func init() {
	registry.Register("dist_bag", bagConfig, bagCompare)

	registry.Register("dist_compression", compressionConfig, compressionCompare)
	registry.Register("dist_ncd", compressionConfig, compressionCompare)

	registry.Register("dist_damerau", damerauConfig, damerauCompare)

	registry.Register("dist_hamming", hammingConfig, hammingCompare)

	registry.Register("dist_jaro", func(*registry.Context) {}, jaroCompare)

	registry.Register("dist_jarowinkler", jarowinklerConfig, jarowinklerCompare)

	registry.Register("dist_kernel", distKernelConfig, distKernelCompare)

	registry.Register("dist_lee", leeConfig, leeCompare)

	registry.Register("dist_levenshtein", levenshteinConfig, levenshteinCompare)
	registry.Register("dist_edit", levenshteinConfig, levenshteinCompare)

	registry.Register("dist_osa", osaConfig, osaCompare)

	registry.Register("kern_distance", kernDistanceConfig, kernDistanceCompare)
	registry.Register("kern_dsk", kernDistanceConfig, kernDistanceCompare)

	registry.Register("kern_spectrum", spectrumConfig, spectrumCompare)
	registry.Register("kern_ngram", spectrumConfig, spectrumCompare)

	registry.Register("kern_subsequence", subsequenceConfig, subsequenceCompare)
	registry.Register("kern_ssk", subsequenceConfig, subsequenceCompare)

	registry.Register("kern_wdegree", wdegreeConfig, wdegreeCompare)
	registry.Register("kern_wdk", wdegreeConfig, wdegreeCompare)

	registry.Register("sim_braun", coefficientConfig, braunCompare)
	registry.Register("sim_dice", coefficientConfig, diceCompare)
	registry.Register("sim_czekanowski", coefficientConfig, diceCompare)
	registry.Register("sim_jaccard", coefficientConfig, jaccardCompare)
	registry.Register("sim_kulczynski", coefficientConfig, kulczynskiCompare)
	registry.Register("sim_otsuka", coefficientConfig, otsukaCompare)
	registry.Register("sim_ochiai", coefficientConfig, otsukaCompare)
	registry.Register("sim_simpson", coefficientConfig, simpsonCompare)
	registry.Register("sim_sokal", coefficientConfig, sokalCompare)
	registry.Register("sim_anderberg", coefficientConfig, sokalCompare)
}
