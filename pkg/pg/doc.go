// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect opens a *pgxpool.Pool from Config (PG_* environment variables) and
// retries with a growing delay until the database answers a ping. Migrate
// applies goose migrations from an fs.FS, typically an embed.FS shipped next
// to the queries that need the schema. Healthcheck adapts the pool to a
// readiness probe, and IsNotFoundError / IsDuplicateKeyError classify driver
// errors without leaking pgx types to callers.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, pgstore.Migrations, cfg, log); err != nil {
//		return err
//	}
package pg
