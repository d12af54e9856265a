package mcpserver

// ImportFormatContract describes the master checklist and response sheet
// formats accepted by the import tools.
const ImportFormatContract = `# HRP Audit Import Format Contract

Two kinds of documents feed an audit project.

## Master checklist (import_master)

A JSON array (or an object with a ` + "`" + `requirements` + "`" + ` array), or the same
structure in YAML. One record per requirement:

` + "```" + `json
[
  {
    "chapter_level": "3.2",
    "requirement_level": "1. CONSOLIDATED",
    "requirement": "Fire exits are unobstructed and signposted",
    "explanation": "Walk every floor and check each exit"
  }
]
` + "```" + `

- ` + "`" + `chapter_level` + "`" + ` may be a string, a number or null. Commas are read as dots
  (` + "`" + `"3,2"` + "`" + ` is ` + "`" + `3.2` + "`" + `); a bare chapter number becomes ` + "`" + `<n>.0` + "`" + `; a missing chapter becomes ` + "`" + `0.0` + "`" + `.
- ` + "`" + `requirement_level` + "`" + ` must contain one of the tier markers ` + "`" + `0.` + "`" + ` (UNACCEPTABLE),
  ` + "`" + `1.` + "`" + ` (CONSOLIDATED), ` + "`" + `2.` + "`" + ` (ADVANCED) or ` + "`" + `3.` + "`" + ` (EXCELLENCE) to be graded.
- Importing a master checklist replaces the whole requirement list.

## Response sheet (import_responses)

Comma-separated text whose first line is a header row. Fields containing commas
must be double-quoted; a doubled quote inside a quoted field is a literal quote.

` + "```" + `csv
chapter_level,requirement,answer,complies,comments
3.2,Fire exits are unobstructed and signposted,"Yes, all six",OK,
` + "```" + `

Accepted headers (case, spaces and underscores are ignored):

| Field       | Headers                                   |
|-------------|-------------------------------------------|
| chapter     | chapter_level, chapter, chapter level     |
| requirement | requirement, requirement text             |
| answer      | answer, response                          |
| complies    | complies, compliance                      |
| comments    | comments, comment, remarks                |

## Rules

1. A row answers a requirement when the chapter matches and the first 30
   characters of the requirement text are identical.
2. ` + "`" + `complies` + "`" + ` must be one of: OK, NOK, Not Assessed, Not Applicable,
   No but no risk. Anything else is stored as Not Assessed.
3. Requirements without a matching row are reset to Not Assessed; their
   previous answer and comments are kept.
4. Unevaluated spreadsheet formulas (cells starting with ` + "`" + `=` + "`" + ` or containing
   ` + "`" + `=IF(` + "`" + `, ` + "`" + `VLOOKUP` + "`" + ` or ` + "`" + `CONCAT` + "`" + `) are treated as empty.
`
