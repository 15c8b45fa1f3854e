// Package chamanara implements Chamanara's surface X_α — the surface
// called X_α in "Affine automorphism groups of surfaces of infinite type"
// — as a lazy descriptor over ℤ.
//
// One quadrilateral shape, derived from x = 1/(1−α) = Σ αⁿ, is shared by
// every integer label; the gluing, not the polygons, carries all the
// structure. Edges 0 and 2 always glue label p to 1−p. Edges 1 and 3 walk
// the integer line by ±1 — except at the two boundary labels 0 and 1,
// where edge 1 reflects to edge 1 of 1−p instead. This three-way branch
// (p strictly negative, p strictly greater than one, p in {0,1}) is what
// makes X_α infinite-genus rather than periodic.
//
// X_α is a half-dilation surface, not a translation surface. The
// translation surface is obtained by composing a descriptor with an
// external minimal-translation-cover construction; TranslationSurface
// accepts that construction as a surface.Cover and applies it.
//
// Errors: surface.ErrInvalidParameter (α outside (0,1) or nil inputs),
// surface.ErrInvalidLabel, surface.ErrInvalidEdge.
package chamanara
