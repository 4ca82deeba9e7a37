package mysql

// Note: `text` is reserved; keep it quoted everywhere.
// source_id is a content hash (entity|text|rating) so re-running the
// ingestor on the same file updates labels instead of duplicating rows.
const insertReviewsPrefix = "INSERT INTO reviews\n  (source_id, entity, `text`, rating, sentiment)\nVALUES "

const insertReviewsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  rating    = COALESCE(VALUES(rating), reviews.rating),\n" +
	"  sentiment = VALUES(sentiment)\n"

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Newest first; entity match is case-insensitive so dashboard lookups
// tolerate casing differences in the query.
const listByEntitySQL = "SELECT entity, `text`, rating, sentiment\n" +
	"FROM reviews\n" +
	"WHERE LOWER(entity) = LOWER(?)\n" +
	"ORDER BY id DESC"

// Insertion order; the benchmark aggregator's tie-break depends on
// first-encountered entity order.
const listAllSQL = "SELECT entity, `text`, rating, sentiment\n" +
	"FROM reviews\n" +
	"ORDER BY id"

const listEntitiesSQL = `
SELECT entity, COUNT(*) AS reviews
FROM reviews
WHERE entity <> ''
GROUP BY entity
ORDER BY reviews DESC, entity
`
