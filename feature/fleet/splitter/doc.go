// Package splitter normalizes raw picture-book entries into one record per stage.
//
// A dual-row entry (six card slots on page 0) holds two upgrade stages under
// one picture-book number. Split builds two independent records from it: the
// first keeps the entry's name, the second gets the stage marker appended.
// Every page is attributed through the classifier:
//
//   - six-slot pages are halved, slots 0-2 to stage 0 and 3-5 to the second stage
//   - original-illustration pages go whole to one stage, or slot by slot for
//     two-slot pages, and reuse page 0's stage-0 status images
//   - other pages stay with stage 0, apart from the swimsuit page of Gotland
//
// Pages moved away from a stage are kept as empty pages so page indexes line
// up across both records. Summary counts are recomputed from the pages.
package splitter
