package campaigning

import "errors"

// ErrCampaignNotOwned indica que a campanha não pertence ao usuário autenticado.
// A superfície HTTP traduz para 404 para não revelar a existência da campanha.
var ErrCampaignNotOwned = errors.New("campanha não encontrada para este usuário")
