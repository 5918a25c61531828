// 15 Oct 2026

/*
Ppfilter masks residues which a pair-HMM has not placed with confidence,
before the sequences go on to alignment and tree building.

Every residue needs a posterior probability score from somewhere else.
These are read from infile.PP unless -p says otherwise. The score file
has a ">name" line for each sequence, in the same order as the fasta
file, followed by one number per residue.

Filtering goes in four steps:
  - residues scoring below the threshold are removed;
  - two removed regions separated by fewer than -j residues are joined;
  - if anything is removed within -n residues of an end, everything from
    there to the end is removed and marked as outside the core;
  - the proportion removed and in the core is calculated per sequence.

Removed residues are replaced by the mask character, X by default, and
the result is written to infile.filtered. Sequences where everything was
removed are left out, but still counted in the final table.

Usage:

	ppfilter [flags] infile

The threshold can be given (-t) or chosen so a proportion of residues
over all sequences is kept (-r). Not both. With -r, a ladder of cut-offs
for keeping 100 % down to 75 % is logged, which helps when picking a
value. With neither, the threshold is 0.994.

Flags can also come from a yaml file (-c) or the environment, with a
PPFILTER_ prefix and - replaced by _, so PPFILTER_DRY_RUN=true.

The flags -detail, -summary and -profile write extra files next to the
input. The profile is a csv with the mean score, fraction removed and
fraction in the core by relative position along the sequences, for
plotting.
*/
package main
