// Package report implements the audit-report format for per-image-zone
// analysis: a fixed 32×32 intensity grid with strict ingest validation,
// deterministically ordered regions, and content-addressed report ids.
//
// What:
//
//   - Grid: 32×32 float64 intensities in [0,1]. NaN, infinities,
//     subnormals, and out-of-range values are rejected at ingest, so a
//     constructed grid is canonical by construction.
//   - Region: a detected zone with severity, area ratio, centroid, and
//     id. Regions order by (severityScore descending, areaRatio
//     descending, centroidRow, centroidCol, regionId), every float
//     comparison through the platform-neutral total order.
//   - Report: grid plus ordered regions; its id is the hex of the
//     decision digest over the canonical bytes, so identical content
//     always addresses identically.
//
// Errors:
//
//   - ErrGridShape: input is not exactly 32×32.
//   - ErrBadIntensity: a cell failed strict validation.
package report
