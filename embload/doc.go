// Package embload provides embedding-matrix loaders for the dimension
// estimation pipeline.
//
// Loaders map an entity identifier (e.g. a protein accession) to its N×D
// per-token embedding matrix. Two implementations are provided: DirLoader
// reads NumPy ".npy" files (optionally gzip-compressed) from a directory,
// and Memory serves matrices from an in-process map, which is useful for
// tests and for callers that manage their own caching.
//
// Both satisfy the phdim.EmbeddingLoader interface.
package embload
