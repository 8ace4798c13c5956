// Wanderlust - Travel Destination Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

/*
Package supervisor runs the long-lived parts of the server under a suture
supervision tree.

The tree has two layers so a crash in one does not take down the other:

	wanderlust (root)
	├── data-layer   dataset reload service (cron)
	└── api-layer    HTTP server

Supervisor events are logged through sutureslog, bridged to zerolog by
logging.NewSlogLogger.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewReloadService(store, cfg))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
