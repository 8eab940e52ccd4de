// Derives content-addressed tags and inspects OCI image layouts.
//
// Tags name intermediate build states in the on-disk layout. They are
// derived from the inputs that define a state: the transport source for
// the base image, or the raw script text for everything built on top.
// The "-src"/"-dest" suffixes namespace the two derivations so they can
// never collide, even on identical digests.
//
// FindDescriptor resolves a tag to its manifest descriptor by reading the
// layout's index, which is how the final build result is reported.
package image
