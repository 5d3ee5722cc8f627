package sidecarmatch

// extraMarkers lists the localized "edited variant" suffixes Google
// Photos appends to a derivative file's basename, per spec.md §4.1 step 6
// and the GLOSSARY's "Extra / edited variant" entry. The list is not
// ordered by length; no marker in it is a prefix or suffix of another, so
// a full-marker match does not depend on the order.
var extraMarkers = []string{
	"-bearbeitet", // de
	"-modificato", // it
	"-editerad",   // sv
	"-modifié",    // fr
	"-editada",    // es/pt
	"-bewerkt",    // nl
	"-muokattu",   // fi
	"-redigerad",  // sv alt
	"-redigeret",  // da
	"-redigert",   // no
	"-edytowane",  // pl
	"-edited",     // en
}

// heavyFormatExts are RAW/heavy-container extensions that Google's
// extension-fixer sometimes appends after an existing light extension
// (spec.md §4.1 step 4).
var heavyFormatExts = map[string]bool{
	"heic": true, "heif": true, "tiff": true, "tif": true,
	"webp": true, "avif": true, "cr2": true, "dng": true,
	"arw": true, "nef": true, "raf": true, "crw": true,
	"cr3": true, "nrw": true,
}

// lightFormatExts are the common extensions the fixer assumes as the
// starting point before it appends the detected heavy format.
var lightFormatExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true,
}

// truncatedExtCandidates maps a possibly-truncated extension fragment to
// its full form, used by the try-hard "partial + extension restore" step.
var truncatedExtCandidates = map[string]string{
	"jp":  "jpg",
	"jpe": "jpeg",
	"pn":  "png",
	"hei": "heic",
	"mp":  "mp4",
	"gi":  "gif",
}
