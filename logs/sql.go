package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id varchar primary key,
  time datetime,
  player1 varchar,
  player2 varchar,
  result string,
  winner string,
  moves int,
  position string,
  mandatory_capture boolean
)`

const createPlayerTable = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, side, win, result, moves
) AS
SELECT id, player2, player1, 'two',
       CASE winner WHEN 'one' THEN 'lose' WHEN 'two' THEN 'win' ELSE 'unfinished' END,
       result, moves
 FROM games
UNION
SELECT id, player1, player2, 'one',
       CASE winner WHEN 'one' THEN 'win' WHEN 'two' THEN 'lose' ELSE 'unfinished' END,
       result, moves
 FROM games
`

const insertStmt = `
INSERT INTO games (id, time, player1, player2, result, winner, moves, position, mandatory_capture)
VALUES (:id, :time, :player1, :player2, :result, :winner, :moves, :position, :mandatory_capture)
`

const selectGames = `
SELECT id, time, player1, player2, result, winner, moves, position, mandatory_capture
FROM games
WHERE player1 = ? OR player2 = ?
ORDER BY time, id
`

const selectStats = `
SELECT player,
       COUNT(*) AS games,
       SUM(CASE win WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       SUM(CASE win WHEN 'lose' THEN 1 ELSE 0 END) AS losses,
       SUM(CASE win WHEN 'unfinished' THEN 1 ELSE 0 END) AS unfinished
FROM player_games
GROUP BY player
ORDER BY wins DESC, player
`
