// Package pgstore stores accounts and sessions in PostgreSQL.
//
// UserStore implements account.Store and SessionStore implements
// session.Store plus session.ExpiredCleaner. Both accept any DBTX, usually a
// *pgxpool.Pool from pg.Connect. Every value travels as a bound parameter.
//
// The schema ships as goose migrations in Migrations:
//
//	if err := pg.Migrate(ctx, pool, pgstore.Migrations, cfg, log); err != nil {
//		return err
//	}
//	users := pgstore.NewUserStore(pool)
//	sessions := pgstore.NewSessionStore(pool)
package pgstore
