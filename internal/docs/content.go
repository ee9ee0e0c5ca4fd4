package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with bookgen",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "book.yaml fields and defaults",
		Content: topicConfig,
	},
	{
		Name:    "layout",
		Title:   "Source Layout",
		Summary: "Topic naming conventions and classification rules",
		Content: topicLayout,
	},
	{
		Name:    "outline",
		Title:   "Outline Format",
		Summary: "The generated SUMMARY.md and its ordering guarantees",
		Content: topicOutline,
	},
	{
		Name:    "renderer",
		Title:   "External Renderer",
		Summary: "How the renderer command is invoked",
		Content: topicRenderer,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a book:

    cd your-docs
    bookgen init

   This creates book.yaml, README.md, and an example src/ tree.

2. Add topics under src/ — either single markdown files or directories
   with a README.md landing page plus numbered chapter files.

3. Preview the navigation outline:

    bookgen outline

4. Assemble the book:

    bookgen build

5. Check the last build:

    bookgen status

CLI Flags
---------

  bookgen build                 Stage content, write the outline, render
  bookgen build --no-render     Stop after writing the outline
  bookgen build --check         Verify content links before staging
  bookgen build --dry-run       Print the plan and outline, touch nothing
  bookgen outline               Print the outline to stdout
  bookgen check                 Report broken links and omitted entries
  bookgen status                Show the last build record
  bookgen init                  Scaffold a new book
  bookgen docs                  List documentation topics
  bookgen docs <topic>          Show a documentation topic
`

const topicConfig = `Configuration Reference
=======================

Books are defined by a book.yaml at the book root. bookgen finds the root
by walking up from the working directory.

Fields
------

  title             string   Required. Book title.
  source            string   Source root, relative to the book root.
                             Default: src
  build-dir         string   Destination directory for staged content and
                             the outline. Default: book
  introduction      string   Introduction document, relative to the book
                             root, staged as the landing page.
                             Default: README.md
  renderer          string   Shell command invoked after assembly. Empty
                             disables rendering.
  renderer-timeout  int      Minutes. Default: 10.

source, build-dir, and introduction must stay inside the book root, and
source and build-dir must not nest.

Renderer commands undergo $VAR expansion with BOOK_ROOT, SOURCE_DIR,
BUILD_DIR, and TITLE. Unknown variables fall back to the environment.
`

const topicLayout = `Source Layout
=============

Each immediate child of the source root is one topic:

  src/overview.md                A leaf topic. Outline title: filename
                                 without extension.
  src/getting-started/           A chaptered topic. Requires README.md as
      README.md                  its landing page. Outline title: the
      01-first-steps.md          directory name.
      02-details.md

Chapter files are named <ordinal>-<title>.md. The outline title is the
portion after the first '-', extension stripped ("first-steps" above).
Files in a topic directory that do not match the pattern are staged but
never listed.

A directory without a README.md produces no outline entry, silently.
'bookgen check' reports such directories.

A document may carry YAML front matter; its title field overrides the
filename-derived outline title:

  ---
  title: First Steps
  ---
`

const topicOutline = `Outline Format
==============

The outline is written to <build-dir>/SUMMARY.md:

  # Summary

  [Introduction](introduction.md)

  - [overview](overview.md)
  - [getting-started](getting-started/README.md)
      - [first-steps](getting-started/01-first-steps.md)

The prologue entry always points at the staged landing page. Topics appear
in byte-wise lexicographic order of their entry names, chapters in
byte-wise filename order. The ordering is a contract: identical input
produces a byte-identical outline on every run.
`

const topicRenderer = `External Renderer
=================

After staging and outline generation, bookgen runs the configured renderer
command via 'bash -c' from the book root, subject to renderer-timeout.
Output streams to the terminal and to <build-dir>/.bookgen/render.log.

A non-zero renderer exit fails the build; the staged tree is left intact
for inspection. bookgen never retries or cleans up renderer output.

The child process sees BOOKGEN_BOOK_ROOT, BOOKGEN_SOURCE_DIR,
BOOKGEN_BUILD_DIR, and BOOKGEN_TITLE in its environment.
`
