// Package walk computes aggregate disk usage for directory trees.
//
// Traversal work is distributed over a fixed pool of workers pulling path
// units from a shared queue. Directories fan out into child units, files
// contribute their size, and hard-linked files are counted once via their
// (device, inode) identity. A counting termination protocol closes the
// queue the instant no unit remains queued or in flight.
//
// Symbolic links are never followed; their own size counts, their targets
// do not. This also holds for links given directly as roots.
package walk
