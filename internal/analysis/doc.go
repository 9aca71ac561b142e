// Package analysis computes descriptive statistics and a least-squares
// linear fit over cleaned V-I measurement datasets. Each run is tagged
// with a UUID so exported reports can be traced to the analysis that
// produced them.
package analysis
