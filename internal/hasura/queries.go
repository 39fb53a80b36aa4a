package hasura

// GraphQL documents sent to the Hasura endpoint

const getShowsQuery = `
query GetShows {
  shows(order_by: { id: desc }, where: { isArchived: { _eq: false } }) {
    isCurrent
    platforms
    title
    id
  }
}`

const setIsCurrentMutation = `
mutation SetIsCurrent($showId: Int, $isCurrent: Boolean) {
  update_shows(where: { id: { _eq: $showId } }, _set: { isCurrent: $isCurrent }) {
    affected_rows
  }
}`

const archiveShowMutation = `
mutation ArchiveShow($showId: Int!) {
  update_shows_by_pk(pk_columns: { id: $showId }, _set: { isArchived: true }) {
    id
  }
}`

const addShowMutation = `
mutation AddShow($title: String, $platforms: String) {
  insert_shows_one(
    object: { isArchived: false, isCurrent: false, platforms: $platforms, title: $title }
  ) {
    id
  }
}`
