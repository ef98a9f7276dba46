package descriptions

// Tool descriptions with practical examples and use cases

const (
	ExtractCommentsDescription = `Convert an annotated manuscript PDF into a plain-text, line-referenced review report.

**When to use:** A reviewer has marked up a manuscript with highlights, strikeouts, or sticky notes and you need the "Comments to the Author" text for submission.

**Why it's useful:** Resolves every annotation to its page and printed line number (or reconstructs line numbers when the manuscript carries none), so comments read like "Page 2, line 19, ...the catalytic mechanism...: unclear phrasing".

**Examples:**
• Prepare a review: "Extract the comments from manuscript-v2.pdf into submission-ready form"
• Check markup coverage: "Extract comments and verify every concern made it into the report"

**Common workflows:**
1. Review Submission: Annotate PDF → extract_comments → paste report into the journal form
2. Co-review Merge: Extract each reviewer's comments → combine reports by line number

**Best practices:** Run validate_pdf first on files of unknown origin; check the returned warnings for pages that could not be parsed.`

	PDFInfoDescription = `Get page count and annotation statistics for a PDF file.

**When to use:** Before extracting comments, to see how much markup a manuscript carries and which annotation kinds are present.

**Why it's useful:** Shows highlight, strikeout and note counts up front, so you know whether an extraction will produce anything and whether unsupported markup (ink, stamps) would be ignored.

**Examples:**
• Scope a review: "How many annotations does manuscript-v2.pdf carry?"
• Spot unsupported markup: "Check whether the reviewer used ink drawings that extraction would skip"

**Common workflows:**
1. Pre-flight: pdf_info → confirm annotation counts → extract_comments
2. Triage: pdf_info on each submission → prioritize heavily annotated manuscripts

**Best practices:** A nonzero "other annotations" count means some reviewer markup will not appear in the report.`

	ValidatePDFDescription = `Verify PDF file integrity and readability before processing.

**When to use:** Before attempting to extract comments from any PDF file, especially in automated workflows or when handling user uploads.

**Why it's useful:** Prevents processing errors, identifies corrupted files early, and ensures compatibility with the extraction tools.

**Examples:**
• Upload verification: "Check the uploaded manuscript.pdf is valid before extraction"
• Quality control: "Verify exported-review.pdf is readable before archiving"

**Common workflows:**
1. Automated Processing: Validate → Extract if valid → Handle errors gracefully
2. Pre-processing Pipeline: Validate → Report issues → Fix or reject bad files

**Best practices:** Always run this first in automated workflows handling unknown PDFs.`
)
